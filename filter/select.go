package filter

import "sort"

// Select assembles every candidate, drops incoherent texts, ranks the rest by
// Score (ties by candidate text) and keeps them in rank order until the next
// one would push the summed CountTokens past MaxTokens.
//
// Complexity: O(n log n) plus the total candidate length.
func Select(candidates []string, startFor, startBac string, reverse bool, opts ...Option) ([]Scored, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1. Assemble, filter, score
	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		text := Assemble(c, startFor, startBac, reverse)
		if !Coherent(text, o.MinWordLength) {
			continue
		}
		scored = append(scored, Scored{
			Candidate: c,
			Text:      text,
			Score:     Score(text),
			Tokens:    CountTokens(text),
		})
	}

	// 2. Rank
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Candidate < scored[j].Candidate
	})

	// 3. Fill the budget, stopping at the first overflow
	total := 0
	for i, s := range scored {
		if total+s.Tokens > o.MaxTokens {
			return scored[:i], nil
		}
		total += s.Tokens
	}

	return scored, nil
}

// Lines returns the texts of sel ordered by candidate, the order result
// files are written in.
func Lines(sel []Scored) []string {
	sorted := make([]Scored, len(sel))
	copy(sorted, sel)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Candidate < sorted[j].Candidate })

	out := make([]string, len(sorted))
	for i, s := range sorted {
		out[i] = s.Text
	}

	return out
}
