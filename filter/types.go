package filter

import (
	"errors"
	"fmt"
)

// Marker divides the two halves of the input text and of exhaustive candidates.
const Marker = '|'

// Defaults.
const (
	// DefaultMaxTokens is the token budget Select fills.
	DefaultMaxTokens = 1000

	// DefaultMinWordLength marks shorter words as nonsensical.
	DefaultMinWordLength = 2
)

// Sentinel errors for input handling.
var (
	// ErrNoMarker is returned when the input text has no center marker.
	ErrNoMarker = errors.New("filter: input needs one '|' divider")

	// ErrManyMarkers is returned when the input text has more than one center marker.
	ErrManyMarkers = errors.New("filter: input must have only one '|' divider")

	// ErrOptionViolation is returned when an Option received an invalid value.
	ErrOptionViolation = errors.New("filter: invalid option supplied")
)

// Options tunes Select.
type Options struct {
	// MaxTokens is the budget of CountTokens summed over the kept texts.
	MaxTokens int

	// MinWordLength is the shortest word Nonsensical accepts.
	MinWordLength int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the budget and word length the command line ships with.
func DefaultOptions() Options {
	return Options{
		MaxTokens:     DefaultMaxTokens,
		MinWordLength: DefaultMinWordLength,
	}
}

// WithMaxTokens sets the token budget. n must be >= 0.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTokens cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTokens = n
	}
}

// WithMinWordLength sets the shortest acceptable word. n must be >= 0.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinWordLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinWordLength = n
	}
}

// Scored is one candidate that passed the heuristics.
type Scored struct {
	// Candidate is the raw search output.
	Candidate string
	// Text is the assembled line.
	Text string
	// Score is the quality score of Text.
	Score int
	// Tokens is CountTokens(Text).
	Tokens int
}
