package lexicon_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/lexicon"
)

func TestLoad_NormalizesAndSkips(t *testing.T) {
	input := "race\n  Car \n\nA\nit's\nice cream\nRACE\r\n42\n"
	lex, err := lexicon.Load(strings.NewReader(input), lexicon.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, 4, lex.Words, "race, car, a and the duplicate RACE")
	assert.Equal(t, 4, lex.Skipped, "blank, apostrophe, phrase, digits")

	for _, w := range []string{"RACE", "CAR", "A"} {
		assert.True(t, lex.Forward.Contains(w), w)
	}
	assert.True(t, lex.Backward.Contains("ECAR"))
	assert.True(t, lex.Backward.Contains("RAC"))
	assert.False(t, lex.Forward.Contains("ITS"))
	assert.Equal(t, 3, lex.Forward.Count())
}

func TestLoad_Latin1(t *testing.T) {
	input := "stra\xdfe\ncaf\xe9\ndog\n"

	lex, err := lexicon.Load(strings.NewReader(input), lexicon.WithLatin1())
	require.NoError(t, err)
	assert.True(t, lex.Contains("strasse"))
	assert.True(t, lex.Contains("DOG"))
	assert.Equal(t, 2, lex.Words)
	assert.Equal(t, 1, lex.Skipped)

	plain, err := lexicon.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.False(t, plain.Contains("STRASSE"), "bytes are not UTF-8 without WithLatin1")
	assert.True(t, plain.Contains("DOG"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("was\nsaw\n"), 0o644))

	lex, err := lexicon.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, lex.Contains("WAS"))
	assert.True(t, lex.Backward.Contains("WAS"), "reverse of SAW")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := lexicon.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFromWords(t *testing.T) {
	lex, err := lexicon.FromWords([]string{"able", "ELBA"})
	require.NoError(t, err)
	assert.True(t, lex.Contains("Able"))
	assert.True(t, lex.Backward.Contains("ELBA"))
	assert.Equal(t, 2, lex.Words)

	_, err = lexicon.FromWords([]string{"ok", "not ok"})
	assert.ErrorIs(t, err, lexicon.ErrInvalidWord)
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { lexicon.WithLogger(nil) })
}
