package search_test

import (
	"fmt"

	"github.com/katalvlaran/palindromer/search"
	"github.com/katalvlaran/palindromer/trie"
)

// ExampleExhaustive grows palindromes from an empty center over {ABLE, ELBA}.
func ExampleExhaustive() {
	fwd, bwd := trie.New(), trie.New()
	for _, w := range []string{"ABLE", "ELBA"} {
		_ = fwd.Insert(w)
		_ = bwd.Insert(w[3:] + w[2:3] + w[1:2] + w[:1])
	}

	res, err := search.Exhaustive(fwd, bwd, "", "", search.WithMaxDepth(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Candidates.Sorted() {
		fmt.Println(c)
	}
	// Output:
	// ABLE|ELBA
	// ELBA|ABLE
}
