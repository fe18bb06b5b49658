package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/palindromer/trie"
)

// trialOutcome classifies how a single generative trial ended.
type trialOutcome int

const (
	outcomeAccepted trialOutcome = iota
	outcomeRejected
	outcomeTooShort
	outcomeAborted
)

// trialRunner owns the per-goroutine state of the generative search: its own
// random stream, its own buffers and counters. Only the candidate set is shared.
type trialRunner struct {
	opts    Options
	fwdRoot *trie.Node
	bwdRoot *trie.Node
	startF  *trie.Node // cursor after walking startFor
	startB  *trie.Node // cursor after walking startBac
	rnd     Source
	fwd     []byte
	bwd     []byte
	set     *Set
	stats   Stats
}

// Generative runs Trials independent random trials. Each trial grows a
// forward and a backward buffer one shared letter at a time, inserting word
// breaks at random on either side, until MaxLength is reached, no shared
// letter exists, or (past StopLength) both sides sit on a word end.
//
// A finished trial is accepted when both sides end on a word. When exactly
// one side does, the other side is closed once with the first child letter
// that completes a word, followed by a space. Accepted trials whose forward
// buffer is shorter than MinLength are dropped; the rest are inserted as
// forward + reverse(backward), with no center marker.
//
// Randomness comes only from Options.Rand (or a stream seeded from Seed).
// With Workers > 1 the trials are split across goroutines, each running its
// own stream derived from the base source.
//
// Errors:
//   - ErrNilTrie            either trie is nil.
//   - ErrOptionViolation    an option carried an invalid value.
//   - ctx.Err()             cancelled between trials; the partial result is returned.
//
// Complexity: O(Trials * MaxLength * 26) time; O(MaxLength) memory per worker
// plus the result set.
func Generative(forward, backward *trie.Node, startFor, startBac string, opts ...Option) (*Result, error) {
	// 1. Validate input tries
	if forward == nil || backward == nil {
		return nil, ErrNilTrie
	}

	// 2. Apply options
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 3. Locate starting cursors
	res := &Result{Candidates: NewSet()}
	f, b, ok := locate(forward, backward, startFor, startBac)
	if !ok {
		o.Logger.Debug("generative search not seeded",
			zap.String("start_forward", startFor),
			zap.String("start_backward", startBac))
		return res, nil
	}
	res.Seeded = true

	newRunner := func(rnd Source) *trialRunner {
		return &trialRunner{
			opts:    o,
			fwdRoot: forward,
			bwdRoot: backward,
			startF:  f,
			startB:  b,
			rnd:     rnd,
			fwd:     make([]byte, 0, o.MaxLength+2),
			bwd:     make([]byte, 0, o.MaxLength+2),
			set:     res.Candidates,
		}
	}

	base := o.Rand
	if base == nil {
		base = rngFromSeed(o.Seed)
	}

	// 4. Run trials
	workers := min(o.Workers, o.Trials)
	if workers <= 1 {
		r := newRunner(base)
		err = r.run(o.Ctx, o.Trials)
		res.Stats = r.stats
	} else {
		err = runParallel(o.Ctx, workers, o.Trials, base, newRunner, res)
	}

	// 5. Summary
	o.Logger.Debug("generative search finished",
		zap.Int("candidates", res.Candidates.Len()),
		zap.Int("workers", max(workers, 1)),
		zap.Int64("trials", res.Stats.Trials),
		zap.Int64("accepted", res.Stats.Accepted),
		zap.Int64("patched", res.Stats.Patched),
		zap.Int64("rejected", res.Stats.Rejected),
		zap.Int64("too_short", res.Stats.TooShort),
		zap.Error(err))
	if res.Stats.Aborted > 0 {
		o.Logger.Warn("generative trials aborted on invariant check",
			zap.Int64("aborted", res.Stats.Aborted))
	}

	return res, err
}

// runParallel splits trials over workers goroutines. Worker streams are
// derived from base before any goroutine starts, so base is only touched
// from the calling goroutine. Each worker fills a private Set; the sets and
// counters are folded into res once every worker has returned.
func runParallel(ctx context.Context, workers, trials int, base Source,
	newRunner func(Source) *trialRunner, res *Result) error {
	runners := make([]*trialRunner, workers)
	for w := range runners {
		runners[w] = newRunner(deriveRNG(base, uint64(w)))
		runners[w].set = NewSet()
	}

	g, gctx := errgroup.WithContext(ctx)
	per, extra := trials/workers, trials%workers
	for w, r := range runners {
		n := per
		if w < extra {
			n++
		}
		g.Go(func() error { return r.run(gctx, n) })
	}
	err := g.Wait()

	for _, r := range runners {
		res.Candidates.Merge(r.set)
		res.Stats.add(r.stats)
	}

	return err
}

// run executes n trials, checking ctx before each.
func (r *trialRunner) run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.stats.Trials++
		switch r.trial() {
		case outcomeAccepted:
			r.stats.Accepted++
			r.set.Add(string(r.fwd) + reverseBytes(r.bwd))
		case outcomeRejected:
			r.stats.Rejected++
		case outcomeTooShort:
			r.stats.TooShort++
		case outcomeAborted:
			r.stats.Aborted++
		}
	}

	return nil
}

// trial grows one candidate into r.fwd / r.bwd and reports how it ended.
// Draw order from the source is part of the contract: Float64 is only drawn
// when its outcome can matter.
func (r *trialRunner) trial() trialOutcome {
	o := &r.opts
	f, b := r.startF, r.startB
	r.fwd, r.bwd = r.fwd[:0], r.bwd[:0]

	for len(r.fwd) < o.MaxLength {
		// 1. Forward word break: forced at a leaf, random at a word end.
		if f.IsLeaf() || (f.IsWord() && r.rnd.Float64() > o.ContinueProb) {
			r.fwd = append(r.fwd, ' ')
			f = r.fwdRoot
		}

		// 2. Pick a letter, scanning from a random offset.
		start := r.rnd.Intn(trie.AlphabetSize)
		ix, ok := acceptable(f, b, start)

		// 3. Nothing fits and the backward word cannot end here.
		if !ok && !b.IsWord() {
			r.stats.DeadEnds++
			break
		}
		if !ok {
			return outcomeAborted
		}

		// 4. Backward word break: forced when the letter only fits after
		// a break, random otherwise.
		if b.IsWord() && (b.Child(ix) == nil || r.rnd.Float64() > o.ContinueProb) {
			r.bwd = append(r.bwd, ' ')
			b = r.bwdRoot
			if ix, ok = acceptable(f, b, start); !ok {
				r.stats.DeadEnds++
				break
			}
		}

		// 5. Both sides must take the letter now.
		nf, nb := f.Child(ix), b.Child(ix)
		if nf == nil || nb == nil {
			return outcomeAborted
		}
		c := trie.Letter(ix)
		r.fwd = append(r.fwd, c)
		r.bwd = append(r.bwd, c)
		f, b = nf, nb

		// 6. Early stop at the first joint word end past StopLength.
		if len(r.fwd) >= o.StopLength && f.IsWord() && b.IsWord() {
			break
		}
	}

	// Finalize: both sides on a word end, or patch the one that is not.
	patched := true
	switch {
	case f.IsWord() && b.IsWord():
		patched = false
	case f.IsWord():
		c, ok := b.FirstWordEnd()
		if !ok {
			return outcomeRejected
		}
		r.bwd = append(r.bwd, c, ' ')
	case b.IsWord():
		c, ok := f.FirstWordEnd()
		if !ok {
			return outcomeRejected
		}
		r.fwd = append(r.fwd, c, ' ')
	default:
		return outcomeRejected
	}

	if len(r.fwd) < o.MinLength {
		return outcomeTooShort
	}
	if patched {
		r.stats.Patched++
	}

	return outcomeAccepted
}

// acceptable scans f's children once around the alphabet from start and
// returns the first letter the backward side can follow: either b has it as
// a child, or b sits on a word end and could break before it.
func acceptable(f, b *trie.Node, start int) (int, bool) {
	it := f.CircIter(start)
	for it.Next() {
		ix := it.Index()
		if b.Child(ix) != nil || b.IsWord() {
			return ix, true
		}
	}

	return -1, false
}
