package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromer/trie"
)

// reverse returns s with its bytes in reverse order.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// buildPair inserts words into a forward trie and their reversals into a backward trie.
func buildPair(t *testing.T, words ...string) (*trie.Node, *trie.Node) {
	t.Helper()
	fwd, bwd := trie.New(), trie.New()
	for _, w := range words {
		require.NoError(t, fwd.Insert(w))
		require.NoError(t, bwd.Insert(reverse(w)))
	}

	return fwd, bwd
}

func TestInsert_ContainsForwardAndBackward(t *testing.T) {
	words := []string{"RACE", "CAR", "A", "RACECAR", "ABLE", "ELBA"}
	fwd, bwd := buildPair(t, words...)

	for _, w := range words {
		assert.True(t, fwd.Contains(w), "forward trie must contain %q", w)
		assert.True(t, bwd.Contains(reverse(w)), "backward trie must contain reverse(%q)", w)
	}
	assert.Equal(t, len(words), fwd.Count())
	assert.Equal(t, len(words), bwd.Count())
}

func TestContains_PrefixIsNotWord(t *testing.T) {
	fwd, _ := buildPair(t, "RACECAR")

	assert.False(t, fwd.Contains("RACE"), "prefix must not be reported as a word")
	assert.True(t, fwd.HasPrefix("RACE"))
	assert.False(t, fwd.Contains("RACECARS"), "missing letter must fail")
	assert.False(t, fwd.Contains("race"), "lower case is outside the alphabet")
	assert.False(t, fwd.Contains(""), "root is not a word unless \"\" was inserted")
}

func TestInsert_Idempotent(t *testing.T) {
	once, _ := buildPair(t, "CAT", "CATS")
	twice, _ := buildPair(t, "CAT", "CATS", "CAT", "CATS")

	assert.Equal(t, once, twice, "re-inserting words must not change the trie shape")
	assert.Equal(t, 2, twice.Count())
	assert.True(t, twice.Contains("CAT"))
}

func TestInsert_InvalidLetterLeavesTrieUnchanged(t *testing.T) {
	root := trie.New()
	require.NoError(t, root.Insert("AB"))
	before := *root

	err := root.Insert("ABc")
	require.ErrorIs(t, err, trie.ErrInvalidLetter)
	assert.Equal(t, before, *root)

	err = root.Insert("X Y")
	assert.ErrorIs(t, err, trie.ErrInvalidLetter)
	assert.False(t, root.HasChild('X'), "validation happens before any node is created")
}

func TestInsert_EmptyWordMarksRoot(t *testing.T) {
	root := trie.New()
	require.NoError(t, root.Insert(""))
	assert.True(t, root.IsWord())
	assert.True(t, root.IsLeaf())
	assert.True(t, root.Contains(""))
}

func TestNodeAccessors(t *testing.T) {
	fwd, _ := buildPair(t, "CAT", "CAB")

	c := fwd.Descend('C')
	require.NotNil(t, c)
	assert.True(t, fwd.HasChild('C'))
	assert.False(t, fwd.HasChild('A'))
	assert.Nil(t, fwd.Descend('a'), "out of alphabet descend is an absence")
	assert.Nil(t, fwd.Child(-1))
	assert.Nil(t, fwd.Child(trie.AlphabetSize))
	assert.Same(t, c, fwd.Child(2))

	ca, ok := fwd.Walk("CA")
	require.True(t, ok)
	assert.False(t, ca.IsWord())
	assert.False(t, ca.IsLeaf())

	cat, ok := fwd.Walk("CAT")
	require.True(t, ok)
	assert.True(t, cat.IsWord())
	assert.True(t, cat.IsLeaf())

	_, ok = fwd.Walk("CAR")
	assert.False(t, ok)
}

func TestFirstWordEnd(t *testing.T) {
	fwd, _ := buildPair(t, "CAT", "CAB", "CAN", "CANE")

	ca, ok := fwd.Walk("CA")
	require.True(t, ok)
	c, ok := ca.FirstWordEnd()
	require.True(t, ok)
	assert.Equal(t, byte('B'), c, "ascending order picks B before N and T")

	_, ok = fwd.FirstWordEnd()
	assert.False(t, ok, "no single-letter words at the root")
}

func TestIndexLetterValid(t *testing.T) {
	ix, ok := trie.Index('A')
	assert.True(t, ok)
	assert.Equal(t, 0, ix)
	ix, ok = trie.Index('Z')
	assert.True(t, ok)
	assert.Equal(t, 25, ix)
	_, ok = trie.Index('[')
	assert.False(t, ok)
	_, ok = trie.Index(' ')
	assert.False(t, ok)

	assert.Equal(t, byte('M'), trie.Letter(12))
	assert.True(t, trie.Valid("HELLO"))
	assert.True(t, trie.Valid(""))
	assert.False(t, trie.Valid("HE LLO"))
}
