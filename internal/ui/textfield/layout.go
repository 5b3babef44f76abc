package textfield

// row is one visual line: graphemes [start, end). A hard row is ended by
// a newline grapheme at index end; a soft row wraps into the next.
type row struct {
	start, end int
	width      int
	hard       bool
}

// layout wraps the content to the field width. The cursor cell at the
// end of a row is reserved, so rows hold at most width-1 cells.
func (m *Model) layout() []row {
	limit := max(m.width-1, 1)
	rows := make([]row, 0, 1)
	cur := row{}
	for i, g := range m.graphemes {
		if isNewline(g) {
			cur.end = i
			cur.hard = true
			rows = append(rows, cur)
			cur = row{start: i + 1}
			continue
		}
		w := cellWidth(g)
		if cur.width+w > limit && cur.width > 0 {
			cur.end = i
			rows = append(rows, cur)
			cur = row{start: i}
		}
		cur.width += w
	}
	cur.end = len(m.graphemes)
	return append(rows, cur)
}

// rowIndex finds the row that shows pos. A position at a soft wrap
// belongs to the following row.
func (m *Model) rowIndex(rows []row, pos int) int {
	for i, r := range rows {
		if pos < r.start {
			continue
		}
		if pos < r.end || (pos == r.end && (r.hard || i == len(rows)-1)) {
			return i
		}
	}
	return len(rows) - 1
}

func (m *Model) rowAt(pos int) row {
	rows := m.layout()
	return rows[m.rowIndex(rows, pos)]
}

// columnOf returns the display column of pos within r.
func (m *Model) columnOf(r row, pos int) int {
	col := 0
	for i := r.start; i < pos && i < r.end; i++ {
		col += cellWidth(m.graphemes[i])
	}
	return col
}

// positionAtColumn returns the position in r closest to col without
// passing it.
func (m *Model) positionAtColumn(r row, col int) int {
	c := 0
	for i := r.start; i < r.end; i++ {
		w := cellWidth(m.graphemes[i])
		if c+w > col {
			return i
		}
		c += w
	}
	return r.end
}

func (m *Model) scrollToCursor() {
	if m.height <= 0 {
		return
	}
	rows := m.layout()
	idx := m.rowIndex(rows, m.cursor)
	if idx < m.offset {
		m.offset = idx
	}
	if idx >= m.offset+m.height {
		m.offset = idx - m.height + 1
	}
	m.offset = min(m.offset, max(len(rows)-m.height, 0))
}
