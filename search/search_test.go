package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromer/search"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]search.Mode{
		"exhaustive":   search.ModeExhaustive,
		"brute":        search.ModeExhaustive,
		" Generative ": search.ModeGenerative,
		"montecarlo":   search.ModeGenerative,
	} {
		got, err := search.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseMode("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownMode)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "exhaustive", search.ModeExhaustive.String())
	assert.Equal(t, "generative", search.ModeGenerative.String())
	assert.Equal(t, "Mode(9)", search.Mode(9).String())
}

func TestRun_Dispatch(t *testing.T) {
	fwd, bwd := buildPair(t, "ABLE", "ELBA")

	res, err := search.Run(fwd, bwd, "", "", search.ModeExhaustive, search.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Candidates.Len())

	res, err = search.Run(fwd, bwd, "", "", search.ModeGenerative,
		search.WithTrials(10), search.WithSeed(seedDet))
	require.NoError(t, err)
	assert.EqualValues(t, 10, res.Stats.Trials)

	_, err = search.Run(fwd, bwd, "", "", search.Mode(7))
	assert.ErrorIs(t, err, search.ErrUnknownMode)
}
