// Package textfield provides a multi-line, soft-wrapping text widget that
// satisfies textops.TextSource. Content edits are left to the caller so
// they can be recorded; the widget itself only moves the cursor and
// selection.
package textfield

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/textmenu/internal/keys"
	"github.com/zjrosen/textmenu/internal/menu"
	"github.com/zjrosen/textmenu/internal/textops"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

// Model is the text field. Use it through a pointer; the TextSource
// methods mutate in place.
type Model struct {
	text      string
	graphemes []string

	cursor int
	// anchor is the fixed end of the selection, or -1 when nothing is
	// selected.
	anchor int
	// goalCol is the display column Up/Down try to keep.
	goalCol int

	width     int
	height    int
	offset    int
	focused   bool
	direction menu.Direction

	placeholder string
	textStyle   lipgloss.Style
}

var _ textops.TextSource = (*Model)(nil)

// New returns an empty, focused field.
func New() *Model {
	return &Model{
		anchor:    -1,
		goalCol:   -1,
		width:     40,
		height:    1,
		focused:   true,
		textStyle: lipgloss.NewStyle().Foreground(styles.TextPrimaryColor),
	}
}

// SetSize sets the content area in cells.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.scrollToCursor()
}

// Width returns the content width in cells.
func (m *Model) Width() int { return m.width }

// Height returns the content height in rows.
func (m *Model) Height() int { return m.height }

// Focus shows the cursor.
func (m *Model) Focus() { m.focused = true }

// Blur hides the cursor.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the cursor is shown.
func (m *Model) Focused() bool { return m.focused }

// SetPlaceholder sets the hint shown while the field is empty.
func (m *Model) SetPlaceholder(s string) { m.placeholder = s }

// SetDirection sets the text flow. RTL right-aligns every row.
func (m *Model) SetDirection(d menu.Direction) { m.direction = d }

// Direction returns the text flow.
func (m *Model) Direction() menu.Direction { return m.direction }

// SetTextColor overrides the label color. Empty restores the theme color.
func (m *Model) SetTextColor(color string) {
	if color == "" {
		m.textStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
		return
	}
	m.textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Text returns the full content.
func (m *Model) Text() string { return m.text }

// Cursor returns the caret position as a grapheme index.
func (m *Model) Cursor() int { return m.cursor }

// Selection returns the live selection, or the zero Selection.
func (m *Model) Selection() textops.Selection {
	if m.anchor < 0 || m.anchor == m.cursor {
		return textops.Selection{}
	}
	return textops.NewSelection(m.anchor, m.cursor)
}

// HasSelection reports whether any text is selected.
func (m *Model) HasSelection() bool {
	return !m.Selection().IsEmpty()
}

// SetText replaces the content. The cursor is clamped and the selection
// dropped.
func (m *Model) SetText(text string) {
	m.setText(text)
	m.cursor = min(m.cursor, len(m.graphemes))
	m.anchor = -1
	m.goalCol = -1
	m.scrollToCursor()
}

// ReplaceRange replaces the graphemes [start, end) with text. The
// selection is dropped; callers place the cursor with Select.
func (m *Model) ReplaceRange(start, end int, text string) {
	n := len(m.graphemes)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	m.setText(textops.SpliceGraphemes(m.text, start, end, text))
	m.cursor = min(m.cursor, len(m.graphemes))
	m.anchor = -1
}

// Select selects [start, end) and leaves the cursor at end. Equal bounds
// only move the cursor.
func (m *Model) Select(start, end int) {
	n := len(m.graphemes)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	m.cursor = end
	m.anchor = start
	if start == end {
		m.anchor = -1
	}
	m.goalCol = -1
	m.scrollToCursor()
}

func (m *Model) setText(text string) {
	m.text = text
	m.graphemes = textops.Graphemes(text)
}

// HandleKey applies cursor and selection movement. It returns false for
// keys it does not own, including every key that edits content.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.Editor.SelectLeft):
		m.extend(m.cursor - 1)
	case key.Matches(msg, keys.Editor.SelectRight):
		m.extend(m.cursor + 1)
	case key.Matches(msg, keys.Editor.SelectHome):
		m.extend(m.rowAt(m.cursor).start)
	case key.Matches(msg, keys.Editor.SelectEnd):
		m.extend(m.rowAt(m.cursor).end)
	case key.Matches(msg, keys.Editor.Left):
		if sel := m.Selection(); !sel.IsEmpty() {
			m.moveTo(sel.Start)
		} else {
			m.moveTo(m.cursor - 1)
		}
	case key.Matches(msg, keys.Editor.Right):
		if sel := m.Selection(); !sel.IsEmpty() {
			m.moveTo(sel.End)
		} else {
			m.moveTo(m.cursor + 1)
		}
	case key.Matches(msg, keys.Editor.WordLeft):
		m.moveTo(m.wordStartBefore(m.cursor))
	case key.Matches(msg, keys.Editor.WordRight):
		m.moveTo(m.wordEndAfter(m.cursor))
	case key.Matches(msg, keys.Editor.Home):
		m.moveTo(m.rowAt(m.cursor).start)
	case key.Matches(msg, keys.Editor.End):
		m.moveTo(m.rowAt(m.cursor).end)
	case key.Matches(msg, keys.Editor.Up):
		m.moveVertical(-1)
	case key.Matches(msg, keys.Editor.Down):
		m.moveVertical(1)
	default:
		return false
	}
	return true
}

func (m *Model) moveTo(pos int) {
	m.Select(pos, pos)
}

func (m *Model) extend(pos int) {
	if m.anchor < 0 {
		m.anchor = m.cursor
	}
	m.cursor = min(max(pos, 0), len(m.graphemes))
	m.goalCol = -1
	m.scrollToCursor()
}

func (m *Model) moveVertical(delta int) {
	rows := m.layout()
	idx := m.rowIndex(rows, m.cursor)
	col := m.goalCol
	if col < 0 {
		col = m.columnOf(rows[idx], m.cursor)
	}
	target := idx + delta
	if target < 0 || target >= len(rows) {
		return
	}
	pos := m.positionAtColumn(rows[target], col)
	m.anchor = -1
	m.cursor = pos
	m.goalCol = col
	m.scrollToCursor()
}

func (m *Model) wordStartBefore(pos int) int {
	for pos > 0 && isSpace(m.graphemes[pos-1]) {
		pos--
	}
	for pos > 0 && !isSpace(m.graphemes[pos-1]) {
		pos--
	}
	return pos
}

func (m *Model) wordEndAfter(pos int) int {
	n := len(m.graphemes)
	for pos < n && isSpace(m.graphemes[pos]) {
		pos++
	}
	for pos < n && !isSpace(m.graphemes[pos]) {
		pos++
	}
	return pos
}

func isSpace(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isNewline(g string) bool {
	return g == "\n" || g == "\r\n" || g == "\r"
}

// cellWidth is the display width of one grapheme. Tabs and other
// controls render as a single space.
func cellWidth(g string) int {
	if g == "\t" || (len(g) == 1 && g[0] < 0x20) {
		return 1
	}
	return runewidth.StringWidth(g)
}

func cellText(g string) string {
	if g == "\t" || (len(g) == 1 && g[0] < 0x20) {
		return " "
	}
	return g
}

// CursorCell returns the cursor's cell relative to the content area.
func (m *Model) CursorCell() (x, y int) {
	rows := m.layout()
	idx := m.rowIndex(rows, m.cursor)
	r := rows[idx]
	x = m.columnOf(r, m.cursor)
	if m.direction == menu.RTL {
		x += max(m.width-r.width-1, 0)
	}
	return min(x, m.width-1), idx - m.offset
}

// View renders exactly Height rows of Width cells.
func (m *Model) View() string {
	if len(m.graphemes) == 0 && m.placeholder != "" {
		hint := styles.MutedStyle.Render(runewidth.Truncate(m.placeholder, m.width-1, "…"))
		if m.focused {
			hint = styles.CursorStyle.Render(" ") + hint
		}
		return m.pad([]string{hint})
	}

	rows := m.layout()
	sel := m.Selection()
	cursorRow := m.rowIndex(rows, m.cursor)

	lines := make([]string, 0, m.height)
	for i := m.offset; i < len(rows) && i < m.offset+m.height; i++ {
		r := rows[i]
		var b strings.Builder
		width := r.width
		if m.direction == menu.RTL {
			b.WriteString(strings.Repeat(" ", max(m.width-r.width-1, 0)))
		}
		for pos := r.start; pos < r.end; pos++ {
			g := cellText(m.graphemes[pos])
			switch {
			case m.focused && pos == m.cursor:
				b.WriteString(styles.CursorStyle.Render(g))
			case pos >= sel.Start && pos < sel.End:
				b.WriteString(styles.SelectedTextStyle.Render(g))
			default:
				b.WriteString(m.textStyle.Render(g))
			}
		}
		if m.focused && i == cursorRow && m.cursor == r.end {
			b.WriteString(styles.CursorStyle.Render(" "))
			width++
		}
		if m.direction != menu.RTL {
			b.WriteString(strings.Repeat(" ", max(m.width-width, 0)))
		}
		lines = append(lines, b.String())
	}
	return m.pad(lines)
}

func (m *Model) pad(lines []string) string {
	blank := strings.Repeat(" ", m.width)
	for i, l := range lines {
		if w := lipgloss.Width(l); w < m.width {
			lines[i] = l + strings.Repeat(" ", m.width-w)
		}
	}
	for len(lines) < m.height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}
