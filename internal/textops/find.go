package textops

import "strings"

// Find returns the leftmost case-sensitive literal match of query in text.
// The bool is false when there is no match, including for an empty query.
// Byte matches that begin or end inside a grapheme cluster are skipped.
func Find(text, query string) (Match, bool) {
	if query == "" || len(query) > len(text) {
		return Match{}, false
	}

	first := strings.Index(text, query)
	if first < 0 {
		return Match{}, false
	}

	starts := graphemeStarts(text)
	for from := first; ; {
		start, okStart := starts[from]
		end, okEnd := starts[from+len(query)]
		if okStart && okEnd {
			return Match{Start: start, End: end}, true
		}

		next := strings.Index(text[from+1:], query)
		if next < 0 {
			return Match{}, false
		}
		from += next + 1
	}
}
