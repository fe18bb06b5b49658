package filter

import "strings"

// SplitInput splits text at its single center marker into the two starting
// fragments. With reverse the fragments are swapped, so the search grows the
// palindrome from the outer edges inward.
func SplitInput(text string, reverse bool) (startFor, startBac string, err error) {
	first := strings.IndexByte(text, Marker)
	if first < 0 {
		return "", "", ErrNoMarker
	}
	if strings.LastIndexByte(text, Marker) != first {
		return "", "", ErrManyMarkers
	}

	startFor, startBac = text[:first], text[first+1:]
	if reverse {
		startFor, startBac = startBac, startFor
	}

	return startFor, startBac, nil
}

// Assemble builds the final line for a candidate.
//
//	normal:            startFor + candidate + startBac
//	reverse:           "|" + after + startBac + startFor + before + "|"
//	reverse, no '|':   "|" + candidate + startBac + startFor + candidate + "|"
//
// where before/after are the parts of candidate around its first marker. A
// generative candidate carries no marker and already reads the same both
// ways, so it is placed on both outer edges.
func Assemble(candidate, startFor, startBac string, reverse bool) string {
	if !reverse {
		return startFor + candidate + startBac
	}

	before, after, ok := strings.Cut(candidate, string(Marker))
	if !ok {
		before, after = candidate, candidate
	}
	var b strings.Builder
	b.Grow(len(before) + len(after) + len(startFor) + len(startBac) + 2)
	b.WriteByte(Marker)
	b.WriteString(after)
	b.WriteString(startBac)
	b.WriteString(startFor)
	b.WriteString(before)
	b.WriteByte(Marker)

	return b.String()
}
