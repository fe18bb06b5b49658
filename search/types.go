// Package search defines options, result types and error definitions for the
// exhaustive and generative palindrome searches.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// CenterMarker separates the forward and backward halves of an exhaustive
// candidate, and of the caller's input text.
const CenterMarker = '|'

// Defaults.
const (
	// DefaultMaxDepth bounds the exhaustive recursion depth.
	DefaultMaxDepth = 30

	// DefaultMaxResults caps the exhaustive result set.
	DefaultMaxResults = 2000000

	// DefaultTrials is the number of generative trials per run.
	DefaultTrials = 10000000

	// DefaultStopLength is the forward length after which a trial stops at the
	// first joint word boundary.
	DefaultStopLength = 100

	// DefaultMaxLength is the hard forward length limit of a trial.
	DefaultMaxLength = 120

	// DefaultMinLength discards accepted trials whose forward buffer is shorter.
	DefaultMinLength = 10

	// DefaultContinueProb is the probability of continuing a word that could end.
	DefaultContinueProb = 0.75

	// DefaultWorkers runs trials on the calling goroutine.
	DefaultWorkers = 1
)

// forceStop is the depth sentinel that makes the next exhaustive call terminal.
const forceStop = -1

// Sentinel errors for search execution.
var (
	// ErrNilTrie is returned when either trie is nil.
	ErrNilTrie = errors.New("search: trie is nil")

	// ErrOptionViolation is returned when an Option received an invalid value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode and Run for an unknown mode.
	ErrUnknownMode = errors.New("search: unknown mode")
)

// Source is the randomness the generative search draws from.
// *math/rand.Rand satisfies it. A Source is never shared between goroutines:
// parallel workers derive their own streams from it.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// Int63 returns a non-negative 63-bit integer; used to derive worker streams.
	Int63() int64
}

var _ Source = (*rand.Rand)(nil)

// Option configures a search via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds every knob of both searches. Exhaustive reads Ctx, MaxDepth,
// MaxResults and Logger; Generative reads the rest.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked at the top of every
	// exhaustive call and every generative trial.
	Ctx context.Context

	// MaxDepth is the exhaustive depth at which a branch becomes terminal.
	MaxDepth int

	// MaxResults caps the exhaustive result set; expansion stops once reached.
	MaxResults int

	// Trials is the number of independent generative trials.
	Trials int

	// StopLength enables the early stop at a joint word boundary.
	StopLength int

	// MaxLength is the hard limit on the forward buffer of a trial.
	MaxLength int

	// MinLength discards shorter accepted trials.
	MinLength int

	// ContinueProb is the probability of continuing past a possible word end.
	ContinueProb float64

	// Rand is the random source; nil means a stream seeded from Seed.
	Rand Source

	// Seed seeds the default stream when Rand is nil. 0 maps to a fixed default.
	Seed int64

	// Workers is the number of goroutines running trials.
	Workers int

	// Logger receives run summaries; never nil after DefaultOptions.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - the Default* limits above
//   - seed 0 (deterministic default stream), one worker
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxDepth:     DefaultMaxDepth,
		MaxResults:   DefaultMaxResults,
		Trials:       DefaultTrials,
		StopLength:   DefaultStopLength,
		MaxLength:    DefaultMaxLength,
		MinLength:    DefaultMinLength,
		ContinueProb: DefaultContinueProb,
		Workers:      DefaultWorkers,
		Logger:       zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth sets the exhaustive depth bound. d must be >= 0;
// d == 0 yields the single empty terminal.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxResults sets the exhaustive result cap. n must be >= 1.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxResults must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxResults = n
	}
}

// WithTrials sets the number of generative trials. n must be >= 0.
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Trials cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithLengths sets the generative length policy: early-stop length, hard
// maximum and minimum accepted length. All must be >= 0.
func WithLengths(stop, maxLen, minLen int) Option {
	return func(o *Options) {
		if stop < 0 || maxLen < 0 || minLen < 0 {
			o.err = fmt.Errorf("%w: lengths cannot be negative (stop=%d max=%d min=%d)",
				ErrOptionViolation, stop, maxLen, minLen)
			return
		}
		o.StopLength, o.MaxLength, o.MinLength = stop, maxLen, minLen
	}
}

// WithContinueProb sets the word continuation probability, p in [0, 1].
func WithContinueProb(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: ContinueProb must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.ContinueProb = p
	}
}

// WithRand provides an explicit random source. Panics on nil; prefer WithSeed
// for reproducible runs.
func WithRand(r Source) Option {
	if r == nil {
		panic("search: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds the default random stream (seed 0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets the number of goroutines running generative trials. n >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger installs a logger for run summaries. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// resolveOptions applies opts over DefaultOptions and returns the last
// recorded violation, if any.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Stats reports what a run did. Exhaustive fills Calls and Terminals;
// Generative fills the trial counters.
type Stats struct {
	// Calls counts exhaustive recursive calls that expanded or emitted.
	Calls int64
	// Terminals counts exhaustive terminal states reached (including duplicates).
	Terminals int64

	// Trials counts generative trials executed.
	Trials int64
	// Accepted counts trials inserted into the set (including duplicates).
	Accepted int64
	// Patched counts accepted trials that needed the one-letter patch.
	Patched int64
	// DeadEnds counts trials whose growth stopped for lack of a shared letter.
	DeadEnds int64
	// Rejected counts trials that ended off a word boundary and could not be patched.
	Rejected int64
	// TooShort counts trials discarded by MinLength.
	TooShort int64
	// Aborted counts trials stopped by an internal invariant check.
	Aborted int64
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Calls += o.Calls
	s.Terminals += o.Terminals
	s.Trials += o.Trials
	s.Accepted += o.Accepted
	s.Patched += o.Patched
	s.DeadEnds += o.DeadEnds
	s.Rejected += o.Rejected
	s.TooShort += o.TooShort
	s.Aborted += o.Aborted
}

// Result captures the outcome of a search.
type Result struct {
	// Candidates is the set of unique candidate strings.
	Candidates *Set

	// Seeded is false when a starting fragment could not be walked in its
	// trie; Candidates is then empty.
	Seeded bool

	// Truncated is true when the exhaustive cap stopped expansion.
	Truncated bool

	// Stats holds run counters.
	Stats Stats
}
