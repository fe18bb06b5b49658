package search

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/trie"
)

// exhaustiveWalker encapsulates state during the exhaustive search.
// The two buffers and space counters are shared by every frame and restored
// on the way back up, so each branch sees exactly its own path.
type exhaustiveWalker struct {
	opts    Options
	fwdRoot *trie.Node // reset target after a forward space
	bwdRoot *trie.Node // reset target after a backward space
	fwd     []byte     // forward accumulator
	bwd     []byte     // backward accumulator, in growth order
	fwdSp   int        // spaces in fwd
	bwdSp   int        // spaces in bwd
	res     *Result
}

// Exhaustive enumerates every letter sequence that can be grown from the
// starting fragments while staying valid in both tries, up to MaxDepth
// letters/spaces and at most MaxResults unique results.
//
// Each result is the forward accumulator, the center marker, then the
// backward accumulator reversed ("forward|backward"); the caller wraps it
// with the starting fragments to obtain the full text.
//
// From every non-terminal state three branch classes are explored, all of
// which may fire:
//  1. forward cursor at a word end: append a space to the forward side only;
//  2. the mirror of 1 for the backward side;
//  3. every letter shared by both cursors (trie.PairIter): append it to both.
//
// A space branch stops immediately (force-stop) when either side already
// holds two spaces or the opposite side already ends with a space.
//
// Errors:
//   - ErrNilTrie            either trie is nil.
//   - ErrOptionViolation    an option carried an invalid value.
//   - ctx.Err()             the context was cancelled; the partial result is returned.
//
// A starting fragment that cannot be walked is not an error: the result is
// empty and Result.Seeded is false.
//
// Complexity: O(b^MaxDepth) time in the worst case (b = shared branching
// factor), bounded in practice by MaxResults; O(MaxDepth) stack.
func Exhaustive(forward, backward *trie.Node, startFor, startBac string, opts ...Option) (*Result, error) {
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
		o.Logger.Debug("exhaustive search not seeded",
			zap.String("start_forward", startFor),
			zap.String("start_backward", startBac))
		return res, nil
	}
	res.Seeded = true

	// 4. Recurse
	w := &exhaustiveWalker{
		opts:    o,
		fwdRoot: forward,
		bwdRoot: backward,
		fwd:     make([]byte, 0, o.MaxDepth+1),
		bwd:     make([]byte, 0, o.MaxDepth+1),
		res:     res,
	}
	err = w.traverse(f, b, 0)

	o.Logger.Debug("exhaustive search finished",
		zap.Int("candidates", res.Candidates.Len()),
		zap.Bool("truncated", res.Truncated),
		zap.Int64("calls", res.Stats.Calls),
		zap.Int64("terminals", res.Stats.Terminals),
		zap.Error(err))

	return res, err
}

// traverse expands the state (f, b, depth). depth == forceStop or
// depth >= MaxDepth makes the state terminal.
func (w *exhaustiveWalker) traverse(f, b *trie.Node, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Global cap: stop expanding, let entered frames unwind.
	if w.res.Candidates.Len() >= w.opts.MaxResults {
		w.res.Truncated = true
		return nil
	}
	w.res.Stats.Calls++

	// 3. Terminal state: record forward|reverse(backward)
	if depth == forceStop || depth >= w.opts.MaxDepth {
		w.emit()
		return nil
	}

	// 4. Space on the forward side
	if f.IsWord() {
		w.fwd = append(w.fwd, ' ')
		w.fwdSp++
		next := depth + 1
		if w.fragmented(w.bwd) {
			next = forceStop
		}
		err := w.traverse(w.fwdRoot, b, next)
		w.fwd = w.fwd[:len(w.fwd)-1]
		w.fwdSp--
		if err != nil {
			return err
		}
	}

	// 5. Space on the backward side
	if b.IsWord() {
		w.bwd = append(w.bwd, ' ')
		w.bwdSp++
		next := depth + 1
		if w.fragmented(w.fwd) {
			next = forceStop
		}
		err := w.traverse(f, w.bwdRoot, next)
		w.bwd = w.bwd[:len(w.bwd)-1]
		w.bwdSp--
		if err != nil {
			return err
		}
	}

	// 6. Letters both sides can take
	it := f.PairIter(b)
	for it.Next() {
		c := it.Letter()
		w.fwd = append(w.fwd, c)
		w.bwd = append(w.bwd, c)
		err := w.traverse(it.Forward(), it.Backward(), depth+1)
		w.fwd = w.fwd[:len(w.fwd)-1]
		w.bwd = w.bwd[:len(w.bwd)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// fragmented applies the balance rule after a space was appended: too many
// spaces on either side, or the opposite side already ends with one.
func (w *exhaustiveWalker) fragmented(opposite []byte) bool {
	if w.fwdSp >= 2 || w.bwdSp >= 2 {
		return true
	}

	return len(opposite) > 0 && opposite[len(opposite)-1] == ' '
}

// emit inserts the current terminal state into the result set.
func (w *exhaustiveWalker) emit() {
	w.res.Stats.Terminals++
	w.res.Candidates.Add(string(w.fwd) + string(CenterMarker) + reverseBytes(w.bwd))
}
