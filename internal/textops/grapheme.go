package textops

import "github.com/rivo/uniseg"

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Indices <= 0 map to 0 and indices past the end map to len(s).
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// graphemeStarts maps the byte offset of every cluster boundary in s
// (including len(s)) to its grapheme index.
func graphemeStarts(s string) map[int]int {
	starts := make(map[int]int, len(s)+1)
	starts[0] = 0

	idx := 0
	offset := 0
	state := -1
	for rest := s; len(rest) > 0; {
		cluster, next, _, newState := uniseg.StepString(rest, state)
		idx++
		offset += len(cluster)
		starts[offset] = idx
		rest = next
		state = newState
	}
	return starts
}

// SliceByGraphemes returns s between grapheme indices start and end
// (exclusive). Out-of-range bounds are clamped.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[startByte:endByte]
}

// SpliceGraphemes replaces the grapheme range [start, end) of s with insert.
func SpliceGraphemes(s string, start, end int, insert string) string {
	if end < start {
		start, end = end, start
	}
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[:startByte] + insert + s[endByte:]
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}
