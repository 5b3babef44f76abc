package textops

// TextSource is the host widget as seen by the core.
//
// Implementations must interpret every offset as a grapheme index.
// Select with start == end places the caret without selecting.
type TextSource interface {
	// Text returns the full content.
	Text() string
	// Selection returns the live selection. Empty when nothing is selected.
	Selection() Selection
	// Cursor returns the caret position.
	Cursor() int
	// SetText replaces the whole content.
	SetText(text string)
	// ReplaceRange replaces [start, end) with text.
	ReplaceRange(start, end int, text string)
	// Select selects [start, end).
	Select(start, end int)
}

// Clipboard is the buffer read by paste and written by copy and cut.
// Its lifetime belongs to the host.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

// Selection is a grapheme range. The zero value means "no selection".
type Selection struct {
	Start int
	End   int
}

// NewSelection returns a normalized selection of [start, end).
func NewSelection(start, end int) Selection {
	return Selection{Start: start, End: end}.Normalize()
}

// Normalize orders the bounds so Start <= End.
func (s Selection) Normalize() Selection {
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// IsEmpty reports whether the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of graphemes selected.
func (s Selection) Len() int {
	n := s.Normalize()
	return n.End - n.Start
}

// clamp limits the selection to a text of n graphemes.
func (s Selection) clamp(n int) Selection {
	s = s.Normalize()
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	return s
}

// Match is the grapheme range [Start, End) of a find result.
type Match struct {
	Start int
	End   int
}
