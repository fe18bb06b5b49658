package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/palindromer/trie"
)

// Mode selects the search strategy used by Run.
type Mode int

const (
	// ModeExhaustive enumerates every branch up to MaxDepth.
	ModeExhaustive Mode = iota
	// ModeGenerative runs random trials.
	ModeGenerative
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeExhaustive:
		return "exhaustive"
	case ModeGenerative:
		return "generative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a name to a Mode. "brute" and "montecarlo" are accepted as
// aliases. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "brute":
		return ModeExhaustive, nil
	case "generative", "montecarlo":
		return ModeGenerative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Run dispatches to Exhaustive or Generative.
func Run(forward, backward *trie.Node, startFor, startBac string, mode Mode, opts ...Option) (*Result, error) {
	switch mode {
	case ModeExhaustive:
		return Exhaustive(forward, backward, startFor, startBac, opts...)
	case ModeGenerative:
		return Generative(forward, backward, startFor, startBac, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}
