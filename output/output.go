package output

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format names accepted by Open.
const (
	FormatText   = "text"
	FormatSQLite = "sqlite"
)

// ErrUnknownFormat is returned by Open for an unsupported format name.
var ErrUnknownFormat = errors.New("output: unknown format")

// Run describes the search that produced a batch of lines.
type Run struct {
	// ID identifies the run; SQLiteWriter fills it with a UUID when empty.
	ID string
	// Input is the text given on the command line, marker included.
	Input string
	// Mode is the search mode name.
	Mode string
	// Reverse is true for inside-out runs.
	Reverse bool
	// Seed is the generative seed, 0 for exhaustive runs.
	Seed int64
	// Created is the run start time; zero means now.
	Created time.Time
}

// Writer stores the lines of one run.
type Writer interface {
	Write(ctx context.Context, run Run, lines []string) error
	Close() error
}

// Open returns the writer for format at path.
func Open(path, format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return CreateText(path)
	case FormatSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
