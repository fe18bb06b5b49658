package auto

import (
	"context"

	"github.com/katalvlaran/palindromer/filter"
)

// ScoreSelector picks the candidate with the highest filter.Score, breaking
// ties by text. It needs no network.
type ScoreSelector struct{}

var _ Selector = ScoreSelector{}

// Select implements Selector.
func (ScoreSelector) Select(_ context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	best, bestScore := candidates[0], filter.Score(candidates[0])
	for _, c := range candidates[1:] {
		s := filter.Score(c)
		if s > bestScore || (s == bestScore && c < best) {
			best, bestScore = c, s
		}
	}

	return best, nil
}
