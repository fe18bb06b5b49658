// Package trie implements the prefix automaton used by the palindrome search
// engine: a 26-way tree over the letters A–Z with word-terminal markers, plus
// the three iteration protocols the searches are built on.
//
// What:
//
//   - Node: one trie node. The root represents the empty prefix. Each node owns
//     up to 26 children keyed by letter and a flag telling whether the path from
//     the root spells a complete dictionary word.
//   - Iter: children in ascending letter order.
//   - CircIter: children scanned once around the alphabet from a start offset,
//     wrapping at Z. Gives every letter a fair first try without shuffling.
//   - PairIter: letters that are children of two nodes at once (set
//     intersection). This is the "both sides can continue" primitive.
//
// Why:
//
//	A palindrome is grown from the center outward. The left half is validated
//	against a forward trie (words as written) and the right half against a
//	backward trie (words with their letters reversed). Descending the backward
//	trie by a letter extends a word from its end.
//
// Key Types & Constants:
//
//   - AlphabetSize = 26, FirstLetter = 'A'
//   - Node, Iter, CircIter, PairIter
//
// Complexity:
//
//   - Insert / Contains / Walk: O(len(word))
//   - HasChild / Descend / Child: O(1)
//   - IsLeaf / Count iteration step: O(26)
//
// Errors:
//
//   - ErrInvalidLetter   word contains a byte outside A–Z; Insert leaves the trie unchanged.
//
// Concurrency:
//
//	A trie is built once and is read-only afterwards. Concurrent readers are
//	safe; Insert must not race with anything.
package trie
