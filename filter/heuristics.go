package filter

import "strings"

// blacklist holds short dictionary words that mostly show up as fragments
// glued onto longer words.
var blacklist = map[string]struct{}{
	"SD": {}, "GN": {}, "II": {}, "AA": {}, "EE": {}, "OO": {},
	"XX": {}, "ZZ": {}, "EB": {}, "ER": {}, "NI": {}, "PU": {},
	"SA": {}, "AT": {}, "REM": {}, "ROC": {}, "SAB": {}, "SUR": {},
	"ASET": {},
}

// maxRun is the shortest run of one repeated letter that marks a word as noise.
const maxRun = 3

// Words splits text into words at spaces and center markers.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == Marker
	})
}

// CountTokens estimates the LLM token cost of text as its word count.
func CountTokens(text string) int {
	return len(Words(text))
}

// Nonsensical reports whether word is too short, blacklisted, or holds a run
// of three or more identical letters.
func Nonsensical(word string, minWordLength int) bool {
	if len(word) < minWordLength {
		return true
	}
	if _, bad := blacklist[word]; bad {
		return true
	}

	run := 1
	for i := 1; i < len(word); i++ {
		if word[i] != word[i-1] {
			run = 1
			continue
		}
		if run++; run >= maxRun {
			return true
		}
	}

	return false
}

// Coherent reports whether fewer than a fifth of the words in text are
// nonsensical. A text without words is coherent.
func Coherent(text string, minWordLength int) bool {
	words := Words(text)
	bad := 0
	for _, w := range words {
		if Nonsensical(w, minWordLength) {
			bad++
		}
	}

	return len(words) == 0 || bad*5 < len(words)
}

// Score rates an assembled text; higher is better.
//
//   - +20 for a length of 10..50 bytes, minus one per byte above 50
//   - +15 for 2..10 space-separated words
//   - +10 when it has both spaces and words
//   - -10 for any double space
//
// The center marker neither counts as a word letter nor separates words.
func Score(text string) int {
	score := 0

	// 1. Length
	switch n := len(text); {
	case n >= 10 && n <= 50:
		score += 20
	case n > 50:
		score -= n - 50
	}

	// 2. Structure
	words, spaces, inWord := 0, 0, false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			spaces++
			if inWord {
				words++
				inWord = false
			}
		case Marker:
		default:
			inWord = true
		}
	}
	if inWord {
		words++
	}
	if words >= 2 && words <= 10 {
		score += 15
	}
	if spaces > 0 && words > 0 {
		score += 10
	}

	// 3. Double spaces
	if strings.Contains(text, "  ") {
		score -= 10
	}

	return score
}
