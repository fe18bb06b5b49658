package search

import (
	"strings"

	"github.com/katalvlaran/palindromer/trie"
)

// locate walks both tries along the caller's starting fragments and returns
// the two cursors the searches start from.
//
//   - forward: the part of startFor after its last space, letter by letter
//     from the left (the word being continued to the right).
//   - backward: the part of startBac before its first space, letter by letter
//     from the right (the word being continued to the left).
//
// ok is false as soon as a letter is missing or outside A–Z; no palindrome
// can be grown from text outside the dictionary.
//
// Complexity: O(len(startFor) + len(startBac)).
func locate(fwdRoot, bwdRoot *trie.Node, startFor, startBac string) (f, b *trie.Node, ok bool) {
	// 1. Forward cursor: suffix after the last space (whole string when none).
	f = fwdRoot
	tail := startFor[strings.LastIndexByte(startFor, ' ')+1:]
	for i := 0; i < len(tail); i++ {
		if f = f.Descend(tail[i]); f == nil {
			return nil, nil, false
		}
	}

	// 2. Backward cursor: prefix before the first space, read right to left.
	b = bwdRoot
	head := startBac
	if ix := strings.IndexByte(startBac, ' '); ix >= 0 {
		head = startBac[:ix]
	}
	for i := len(head) - 1; i >= 0; i-- {
		if b = b.Descend(head[i]); b == nil {
			return nil, nil, false
		}
	}

	return f, b, true
}

// reverseBytes returns a new string holding b in reverse order.
func reverseBytes(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}

	return string(out)
}
