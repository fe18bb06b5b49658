package trie

import "fmt"

// Insert adds word to the trie rooted at n, creating missing nodes along the
// way and marking the final node word-terminal. Inserting the same word twice
// changes nothing.
//
// The whole word is validated before any node is created, so a word with a
// byte outside A–Z returns ErrInvalidLetter and leaves the trie untouched.
// Inserting "" marks n itself as a word.
//
// Complexity: O(len(word)).
func (n *Node) Insert(word string) error {
	// 1. Validate first; a half-inserted path would break Contains/IsLeaf.
	for i := 0; i < len(word); i++ {
		if _, ok := Index(word[i]); !ok {
			return fmt.Errorf("%w: %q at position %d in %q", ErrInvalidLetter, word[i], i, word)
		}
	}

	// 2. Descend, creating children on demand.
	cur := n
	for i := 0; i < len(word); i++ {
		ix := int(word[i] - FirstLetter)
		if cur.children[ix] == nil {
			cur.children[ix] = &Node{}
		}
		cur = cur.children[ix]
	}

	// 3. Mark the end of the word.
	cur.word = true

	return nil
}

// Contains reports whether word was inserted. Any missing letter, or a
// byte outside A–Z, yields false.
//
// Complexity: O(len(word)).
func (n *Node) Contains(word string) bool {
	end, ok := n.Walk(word)

	return ok && end.word
}

// HasPrefix reports whether some inserted word starts with prefix.
// The empty prefix is always present.
func (n *Node) HasPrefix(prefix string) bool {
	_, ok := n.Walk(prefix)

	return ok
}

// Walk descends from n along path and returns the node reached.
// ok is false (and the node nil) as soon as a letter is missing.
//
// Complexity: O(len(path)).
func (n *Node) Walk(path string) (*Node, bool) {
	cur := n
	for i := 0; i < len(path); i++ {
		cur = cur.Descend(path[i])
		if cur == nil {
			return nil, false
		}
	}

	return cur, true
}

// HasChild reports whether letter continues the prefix ending at n.
func (n *Node) HasChild(letter byte) bool {
	return n.Descend(letter) != nil
}

// Descend returns the child for letter, or nil when it is absent or letter
// is not in A–Z.
func (n *Node) Descend(letter byte) *Node {
	ix, ok := Index(letter)
	if !ok {
		return nil
	}

	return n.children[ix]
}

// Child returns the child in slot ix, or nil. ix outside [0, AlphabetSize)
// yields nil.
func (n *Node) Child(ix int) *Node {
	if ix < 0 || ix >= AlphabetSize {
		return nil
	}

	return n.children[ix]
}

// IsWord reports whether the path from the root to n spells a complete word.
func (n *Node) IsWord() bool {
	return n.word
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}

	return true
}

// FirstWordEnd returns the first letter, in ascending order, whose child of n
// is word-terminal. It looks exactly one level deep.
func (n *Node) FirstWordEnd() (byte, bool) {
	for ix, c := range n.children {
		if c != nil && c.word {
			return Letter(ix), true
		}
	}

	return 0, false
}

// Count returns the number of words stored at or below n.
//
// Complexity: O(nodes below n).
func (n *Node) Count() int {
	total := 0
	if n.word {
		total++
	}
	it := n.Iter()
	for it.Next() {
		total += it.Node().Count()
	}

	return total
}
