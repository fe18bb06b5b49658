package auto

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/filter"
	"github.com/katalvlaran/palindromer/lexicon"
	"github.com/katalvlaran/palindromer/search"
)

// Sentinel errors for the refinement loop.
var (
	// ErrNoCandidates is returned by a Selector given nothing to choose from.
	ErrNoCandidates = errors.New("auto: no candidates to select from")

	// ErrBadSelection is returned when a selected line cannot be fed back.
	ErrBadSelection = errors.New("auto: selection has no '|' divider")

	// ErrMarkerlessMode is returned by SearchEngine for a search mode whose
	// lines carry no '|' divider and so cannot be fed back.
	ErrMarkerlessMode = errors.New("auto: search mode yields lines without a '|' divider")
)

// Engine produces the output lines for one input text ("left|right").
type Engine interface {
	Generate(ctx context.Context, input string) ([]string, error)
}

// Selector picks one line among candidates.
type Selector interface {
	Select(ctx context.Context, candidates []string) (string, error)
}

// SearchEngine is the Engine backed by a loaded dictionary: split, search,
// then filter, exactly like a single command-line run.
type SearchEngine struct {
	Lexicon       *lexicon.Lexicon
	Mode          search.Mode
	Reverse       bool
	SearchOptions []search.Option
	FilterOptions []filter.Option
}

var _ Engine = (*SearchEngine)(nil)

// Generate runs one search for input and returns the selected lines in
// candidate order. Only ModeExhaustive keeps the divider the next round
// splits on; other modes fail with ErrMarkerlessMode.
func (e *SearchEngine) Generate(ctx context.Context, input string) ([]string, error) {
	if e.Mode != search.ModeExhaustive {
		return nil, fmt.Errorf("%w: %s", ErrMarkerlessMode, e.Mode)
	}
	startFor, startBac, err := filter.SplitInput(input, e.Reverse)
	if err != nil {
		return nil, err
	}

	opts := append(slices.Clone(e.SearchOptions), search.WithContext(ctx))
	res, err := search.Run(e.Lexicon.Forward, e.Lexicon.Backward, startFor, startBac, e.Mode, opts...)
	if err != nil {
		return nil, err
	}

	kept, err := filter.Select(res.Candidates.Sorted(), startFor, startBac, e.Reverse, e.FilterOptions...)
	if err != nil {
		return nil, err
	}

	return filter.Lines(kept), nil
}

// Options configures Iterate.
type Options struct {
	// Dictionary, when set, drops lines with a word outside it (filter.KnownWords).
	Dictionary filter.Dictionary
	// Logger receives one entry per round.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithDictionary enables the known-words check.
func WithDictionary(d filter.Dictionary) Option {
	return func(o *Options) { o.Dictionary = d }
}

// WithLogger installs a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("auto: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// Iterate runs up to iterations rounds starting from start and returns the
// history of inputs, start first. The history is returned with any error.
func Iterate(ctx context.Context, engine Engine, sel Selector, start string, iterations int, opts ...Option) ([]string, error) {
	o := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	history := []string{start}
	current := start
	for i := 1; i <= iterations; i++ {
		if err := ctx.Err(); err != nil {
			return history, err
		}
		log := o.Logger.With(zap.Int("iteration", i), zap.String("input", current))

		// 1. Generate
		lines, err := engine.Generate(ctx, current)
		if err != nil {
			return history, fmt.Errorf("auto: iteration %d: %w", i, err)
		}
		generated := len(lines)

		// 2. Dictionary check
		if o.Dictionary != nil {
			lines = filter.FilterKnown(lines, o.Dictionary)
		}
		if len(lines) == 0 {
			log.Info("no usable palindromes, stopping", zap.Int("generated", generated))
			return history, nil
		}

		// 3. Select
		choice, err := sel.Select(ctx, lines)
		if err != nil {
			return history, fmt.Errorf("auto: iteration %d: select: %w", i, err)
		}
		if !strings.ContainsRune(choice, filter.Marker) {
			return history, fmt.Errorf("%w: %q", ErrBadSelection, choice)
		}
		log.Info("selected",
			zap.Int("generated", generated),
			zap.Int("known", len(lines)),
			zap.String("choice", choice))

		// 4. Loop detection
		seen := slices.Contains(history, choice)
		history = append(history, choice)
		if seen {
			log.Info("selection repeats an earlier input, stopping")
			return history, nil
		}
		current = choice
	}

	return history, nil
}
