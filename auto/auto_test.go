package auto_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/auto"
	"github.com/katalvlaran/palindromer/lexicon"
	"github.com/katalvlaran/palindromer/search"
)

// fakeEngine returns canned lines per input.
type fakeEngine struct {
	lines map[string][]string
	err   error
	calls []string
}

func (f *fakeEngine) Generate(_ context.Context, input string) ([]string, error) {
	f.calls = append(f.calls, input)
	return f.lines[input], f.err
}

// firstSelector picks the first candidate, or a fixed reply when set.
type firstSelector struct {
	reply string
	err   error
}

func (s firstSelector) Select(_ context.Context, candidates []string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.reply != "" {
		return s.reply, nil
	}
	return candidates[0], nil
}

type mapDict map[string]bool

func (d mapDict) Contains(w string) bool { return d[w] }

func TestIterate_StopsOnLoop(t *testing.T) {
	eng := &fakeEngine{lines: map[string][]string{
		"X|X": {"Y|Y"},
		"Y|Y": {"X|X"},
	}}
	history, err := auto.Iterate(context.Background(), eng, firstSelector{}, "X|X", 5,
		auto.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, []string{"X|X", "Y|Y", "X|X"}, history)
	assert.Len(t, eng.calls, 2)
}

func TestIterate_RespectsIterationCount(t *testing.T) {
	eng := &fakeEngine{lines: map[string][]string{
		"|":   {"|A"},
		"|A":  {"|AA"},
		"|AA": {"|AAA"},
	}}
	history, err := auto.Iterate(context.Background(), eng, firstSelector{}, "|", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"|", "|A", "|AA"}, history)
}

func TestIterate_DictionaryFilter(t *testing.T) {
	eng := &fakeEngine{lines: map[string][]string{
		"WAS|SAW": {"WAS IT|TI SAW", "WAS NO|ON SAW"},
	}}
	dict := mapDict{"WAS": true, "SAW": true, "NO": true, "ON": true}

	history, err := auto.Iterate(context.Background(), eng, firstSelector{}, "WAS|SAW", 1,
		auto.WithDictionary(dict))
	require.NoError(t, err)
	assert.Equal(t, []string{"WAS|SAW", "WAS NO|ON SAW"}, history)

	history, err = auto.Iterate(context.Background(), eng, firstSelector{}, "WAS|SAW", 3,
		auto.WithDictionary(mapDict{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"WAS|SAW"}, history, "nothing known: stop after the first round")
}

func TestIterate_Errors(t *testing.T) {
	boom := errors.New("boom")

	eng := &fakeEngine{err: boom}
	history, err := auto.Iterate(context.Background(), eng, firstSelector{}, "|", 3)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"|"}, history)

	eng = &fakeEngine{lines: map[string][]string{"|": {"A|A"}}}
	_, err = auto.Iterate(context.Background(), eng, firstSelector{err: boom}, "|", 3)
	assert.ErrorIs(t, err, boom)

	_, err = auto.Iterate(context.Background(), eng, firstSelector{reply: "no divider"}, "|", 3)
	assert.ErrorIs(t, err, auto.ErrBadSelection)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = auto.Iterate(ctx, eng, firstSelector{}, "|", 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchEngine_Generate(t *testing.T) {
	lex, err := lexicon.FromWords([]string{"ABLE", "ELBA"})
	require.NoError(t, err)

	eng := &auto.SearchEngine{
		Lexicon:       lex,
		Mode:          search.ModeExhaustive,
		SearchOptions: []search.Option{search.WithMaxDepth(4)},
	}
	lines, err := eng.Generate(context.Background(), "|")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABLE|ELBA", "ELBA|ABLE"}, lines)

	_, err = eng.Generate(context.Background(), "no divider")
	assert.Error(t, err)
}

func TestSearchEngine_GenerativeModeRejected(t *testing.T) {
	lex, err := lexicon.FromWords([]string{"WAS", "SAW", "A", "ERA", "ARE"})
	require.NoError(t, err)

	eng := &auto.SearchEngine{
		Lexicon:       lex,
		Mode:          search.ModeGenerative,
		SearchOptions: []search.Option{search.WithSeed(7), search.WithTrials(200)},
	}
	_, err = eng.Generate(context.Background(), "WAS|SAW")
	assert.ErrorIs(t, err, auto.ErrMarkerlessMode)

	history, err := auto.Iterate(context.Background(), eng, auto.ScoreSelector{}, "WAS|SAW", 3,
		auto.WithDictionary(lex))
	assert.ErrorIs(t, err, auto.ErrMarkerlessMode)
	assert.Equal(t, []string{"WAS|SAW"}, history)
}

func TestScoreSelector(t *testing.T) {
	got, err := auto.ScoreSelector{}.Select(context.Background(),
		[]string{"ABLE|ELBA", "WAS IT|TI SAW", "WAS NO|ON SAW"})
	require.NoError(t, err)
	assert.Equal(t, "WAS IT|TI SAW", got, "ties resolved by text")

	_, err = auto.ScoreSelector{}.Select(context.Background(), nil)
	assert.ErrorIs(t, err, auto.ErrNoCandidates)
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { auto.WithLogger(nil) })
}
