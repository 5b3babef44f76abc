package textops

import "errors"

// memSource is an in-memory TextSource.
type memSource struct {
	text   string
	sel    Selection
	cursor int
}

func newMemSource(text string) *memSource {
	return &memSource{text: text}
}

func (s *memSource) Text() string         { return s.text }
func (s *memSource) Selection() Selection { return s.sel }
func (s *memSource) Cursor() int          { return s.cursor }

func (s *memSource) SetText(text string) {
	s.text = text
	s.cursor = min(s.cursor, GraphemeCount(text))
	s.sel = Selection{}
}

func (s *memSource) ReplaceRange(start, end int, text string) {
	s.text = SpliceGraphemes(s.text, start, end, text)
	s.sel = Selection{}
}

func (s *memSource) Select(start, end int) {
	s.sel = NewSelection(start, end)
	s.cursor = end
}

// memClipboard is a Clipboard that can be told to fail.
type memClipboard struct {
	content string
	copies  int
	err     error
}

var errNoDisplay = errors.New("no display")

func (c *memClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	c.copies++
	return nil
}

func (c *memClipboard) Paste() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.content, nil
}
