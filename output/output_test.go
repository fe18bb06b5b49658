package output_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromer/output"
)

func TestTextWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palindromes.txt")
	w, err := output.Open(path, output.FormatText)
	require.NoError(t, err)

	lines := []string{"WAS IT|TI SAW", "WAS NO|ON SAW"}
	require.NoError(t, w.Write(context.Background(), output.Run{Input: "WAS |SAW"}, lines))
	require.NoError(t, w.Close())

	got, err := output.ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestTextWriter_Buffer(t *testing.T) {
	var buf bytes.Buffer
	w := output.NewTextWriter(&buf)
	require.NoError(t, w.Write(context.Background(), output.Run{}, []string{"A", "B"}))
	require.NoError(t, w.Close())
	assert.Equal(t, "A\nB\n", buf.String())
}

func TestTextWriter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := output.NewTextWriter(&buf).Write(ctx, output.Run{}, []string{"A"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestReadLines_SkipsBlank(t *testing.T) {
	got, err := output.ReadLines(bytes.NewBufferString("  A|A \n\n\nB|B\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A|A", "B|B"}, got)
}

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	w, err := output.Open(path, output.FormatSQLite)
	require.NoError(t, err)
	db := w.(*output.SQLiteWriter)
	ctx := context.Background()

	require.NoError(t, db.Write(ctx, output.Run{ID: "first", Input: "|", Mode: "exhaustive"},
		[]string{"ABLE|ELBA", "ELBA|ABLE"}))
	require.NoError(t, db.Write(ctx, output.Run{Input: "|", Mode: "generative", Seed: 7},
		[]string{"CATTAC"}))

	ids, err := db.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "first")

	var generated string
	for _, id := range ids {
		if id != "first" {
			generated = id
		}
	}
	_, err = uuid.Parse(generated)
	assert.NoError(t, err, "empty run id replaced with a UUID")

	lines, err := db.Lines(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABLE|ELBA", "ELBA|ABLE"}, lines)

	lines, err = db.Lines(ctx, generated)
	require.NoError(t, err)
	assert.Equal(t, []string{"CATTAC"}, lines)

	assert.Error(t, db.Write(ctx, output.Run{ID: "first", Input: "|", Mode: "exhaustive"}, nil),
		"duplicate run id")
	require.NoError(t, db.Close())

	// Reopening keeps earlier runs.
	again, err := output.OpenSQLite(path)
	require.NoError(t, err)
	defer again.Close()
	ids, err = again.Runs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestOpen_UnknownFormat(t *testing.T) {
	_, err := output.Open(filepath.Join(t.TempDir(), "x"), "csv")
	assert.ErrorIs(t, err, output.ErrUnknownFormat)
}
