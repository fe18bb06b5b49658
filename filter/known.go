package filter

import "strings"

// Dictionary answers word membership. *lexicon.Lexicon satisfies it.
type Dictionary interface {
	Contains(word string) bool
}

// KnownWords reports whether line has a center marker and every word on both
// sides of it is in dict. It is the strict check applied to finished output:
// an open word at the edge of an exhaustive result fails it. The closing
// marker of a reverse-mode line is treated as a separator.
func KnownWords(line string, dict Dictionary) bool {
	left, right, ok := strings.Cut(line, string(Marker))
	if !ok {
		return false
	}
	for _, w := range Words(left) {
		if !dict.Contains(w) {
			return false
		}
	}
	for _, w := range Words(right) {
		if !dict.Contains(w) {
			return false
		}
	}

	return true
}

// FilterKnown returns the lines of lines that pass KnownWords, in order.
func FilterKnown(lines []string, dict Dictionary) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if KnownWords(l, dict) {
			out = append(out, l)
		}
	}

	return out
}
