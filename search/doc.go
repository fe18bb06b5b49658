// Package search implements the two palindrome search strategies that run
// over a pair of tries (see package trie): an exhaustive depth-bounded
// enumeration and a randomized generative search.
//
// What:
//
//   - Exhaustive: grows the center of a palindrome outward by every letter
//     both tries accept, branching on optional word breaks. Results are
//     "forward|backward" with the center marker between the halves.
//   - Generative: runs many independent random trials, each producing at most
//     one fused candidate, with a one-letter patch to close an open word.
//   - Run / Mode / ParseMode: strategy dispatch for callers that pick a mode
//     at runtime.
//   - Set: the set of unique candidates both strategies fill, with Merge for
//     folding per-worker sets together.
//
// Why:
//
//	Both halves of a palindrome carry the same letters; only word breaks
//	differ. Walking the forward trie with the left half and the backward trie
//	with the right half keeps every partial result made of dictionary words
//	(or a word still being spelled).
//
// Options:
//
//   - WithContext(ctx)            cancellation, checked per call / per trial
//   - WithMaxDepth(d)             exhaustive depth bound (default 30)
//   - WithMaxResults(n)           exhaustive set cap (default 2,000,000)
//   - WithTrials(n)               generative trials (default 10,000,000)
//   - WithLengths(stop, max, min) generative length policy (100, 120, 10)
//   - WithContinueProb(p)         probability of continuing a word (0.75)
//   - WithRand(src) / WithSeed(s) randomness
//   - WithWorkers(n)              parallel generative trials
//   - WithLogger(l)               zap logger for run summaries
//
// Complexity:
//
//   - Exhaustive: exponential in MaxDepth, bounded by MaxResults.
//   - Generative: O(Trials * MaxLength * 26).
//
// Errors:
//
//   - ErrNilTrie           a trie argument is nil
//   - ErrOptionViolation   an option received an invalid value
//   - ErrUnknownMode       Run / ParseMode got an unknown mode
//   - ctx.Err()            the run was cancelled; the partial result is returned
//
// Concurrency:
//
//	Tries are read-only during a search and may be shared by concurrent runs.
//	Exhaustive runs on the calling goroutine. Generative runs there too unless
//	WithWorkers(n > 1) is given, in which case the trials are split across n
//	goroutines. Each collects into a private Set; the sets are merged after
//	all workers return.
package search
