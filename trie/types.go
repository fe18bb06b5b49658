package trie

import "errors"

const (
	// AlphabetSize is the number of child slots per node (A..Z).
	AlphabetSize = 26

	// FirstLetter is the letter stored in child slot 0.
	FirstLetter byte = 'A'

	// LastLetter is the letter stored in child slot AlphabetSize-1.
	LastLetter byte = 'Z'
)

// ErrInvalidLetter indicates a word passed to Insert contains a byte outside A–Z.
var ErrInvalidLetter = errors.New("trie: letter outside A-Z")

// Node is a single trie node. The zero value is an empty root.
//
// A Node exclusively owns its children. There is no parent link: every
// walk in this module is top-down, and callers that need to go back keep
// their own cursor (see the search package).
type Node struct {
	children [AlphabetSize]*Node // child per letter, nil when absent
	word     bool                // path from the root spells a complete word
}

// New returns an empty root node.
func New() *Node {
	return &Node{}
}

// Index maps a letter to its child slot. ok is false for bytes outside A–Z.
func Index(letter byte) (ix int, ok bool) {
	if letter < FirstLetter || letter > LastLetter {
		return -1, false
	}

	return int(letter - FirstLetter), true
}

// Letter maps a child slot back to its letter. ix must be in [0, AlphabetSize).
func Letter(ix int) byte {
	return FirstLetter + byte(ix)
}

// Valid reports whether every byte of s is an upper-case letter A–Z.
// The empty string is valid.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := Index(s[i]); !ok {
			return false
		}
	}

	return true
}
