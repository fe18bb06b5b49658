// Package auto runs the refinement loop: generate palindromes from an input,
// keep the lines made only of dictionary words, let a Selector pick the best
// one, and feed it back as the next input.
//
// The loop stops after the requested number of rounds, when a round yields no
// usable line, when the selector fails, or when a chosen line repeats an
// earlier input.
//
// SearchEngine drives the exhaustive search only: generative lines are fused
// without a '|' divider, so there is nothing to split the next round on, and
// Generate reports ErrMarkerlessMode instead.
//
// Selectors:
//
//   - GenAISelector asks a Gemini model (google.golang.org/genai) for the line
//     with the most meaning and matches the reply back to a candidate.
//   - ScoreSelector picks the highest filter.Score offline.
package auto
