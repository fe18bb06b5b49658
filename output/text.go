package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextWriter writes one line per palindrome to an io.Writer.
type TextWriter struct {
	w      io.Writer
	closer io.Closer
}

var _ Writer = (*TextWriter)(nil)

// NewTextWriter wraps w. Close does not close w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// CreateText creates (or truncates) the file at path.
func CreateText(path string) (*TextWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: create %s: %w", path, err)
	}

	return &TextWriter{w: f, closer: f}, nil
}

// Write writes lines, checking ctx before starting. Run metadata is not
// part of the text format.
func (t *TextWriter) Write(ctx context.Context, _ Run, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bw := bufio.NewWriter(t.w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return fmt.Errorf("output: write line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("output: write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flush: %w", err)
	}

	return nil
}

// Close closes the underlying file when the writer owns one.
func (t *TextWriter) Close() error {
	if t.closer == nil {
		return nil
	}

	return t.closer.Close()
}

// ReadLines returns the non-empty, trimmed lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if l := trimLine(scanner.Text()); l != "" {
			out = append(out, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("output: read lines: %w", err)
	}

	return out, nil
}

// ReadTextFile reads a file written by TextWriter.
func ReadTextFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// trimLine drops surrounding whitespace; inner spacing is significant.
func trimLine(l string) string {
	return strings.TrimSpace(l)
}
