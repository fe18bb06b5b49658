// Package filter turns raw search candidates into the lines a user sees:
// splitting the input at its center marker, assembling full texts, rejecting
// fragment-heavy texts, scoring the rest and keeping the best within a token
// budget.
//
// What:
//
//   - SplitInput: the caller's "left|right" text into the two starting fragments.
//   - Assemble: candidate plus fragments into the final line (normal or reverse).
//   - Coherent / Nonsensical: short-word blacklist, minimum word length,
//     repeated-letter runs; a text fails when a fifth or more of its words fail.
//   - Score / CountTokens: the ranking heuristic and the token estimate.
//   - Select: score, sort, then greedily keep texts until MaxTokens would overflow.
//   - KnownWords: the post-run check that every word of a line is in a dictionary.
//
// Errors:
//
//   - ErrNoMarker      input text has no '|'
//   - ErrManyMarkers   input text has more than one '|'
package filter
