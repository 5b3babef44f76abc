package textops

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditKind names the operation that produced an EditRecord.
type EditKind string

const (
	EditClear         EditKind = "clear"
	EditCut           EditKind = "cut"
	EditPaste         EditKind = "paste"
	EditDelete        EditKind = "delete"
	EditTimestamp     EditKind = "timestamp"
	EditType          EditKind = "type"
	EditBackspace     EditKind = "backspace"
	EditDeleteForward EditKind = "delete_forward"
	EditReplace       EditKind = "replace"
)

// EditRecord is one undoable mutation: the full text before and after,
// plus the caret on either side so undo/redo can place it back.
type EditRecord struct {
	ID           string
	Kind         EditKind
	Previous     string
	Next         string
	CursorBefore int
	CursorAfter  int
	At           time.Time
}

// EditSummary counts the graphemes inserted and deleted by an edit.
type EditSummary struct {
	Inserted int
	Deleted  int
}

// Summary diffs Previous against Next.
func (r EditRecord) Summary() EditSummary {
	dmp := diffmatchpatch.New()
	var s EditSummary
	for _, d := range dmp.DiffMain(r.Previous, r.Next, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Inserted += GraphemeCount(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Deleted += GraphemeCount(d.Text)
		}
	}
	return s
}

// UndoStack is a linear edit history.
//
// index works as follows:
//   - -1 means nothing to undo (base state)
//   - 0 to len(records)-1 points at the last applied record
//   - Undo reverts records[index] and decrements
//   - Redo increments and re-applies records[index]
//
// Pushing after one or more undos discards everything past index.
type UndoStack struct {
	records []EditRecord
	index   int
	limit   int
}

// NewUndoStack creates an empty history. limit <= 0 means unbounded;
// otherwise the oldest records are dropped once limit is exceeded.
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{
		records: make([]EditRecord, 0),
		index:   -1,
		limit:   limit,
	}
}

// Push appends rec and truncates the redo tail.
func (h *UndoStack) Push(rec EditRecord) {
	h.records = append(h.records[:h.index+1], rec)
	if h.limit > 0 && len(h.records) > h.limit {
		drop := len(h.records) - h.limit
		h.records = append(h.records[:0], h.records[drop:]...)
	}
	h.index = len(h.records) - 1
}

// Undo steps back one record and returns it.
// Returns false at the base state.
func (h *UndoStack) Undo() (EditRecord, bool) {
	if h.index < 0 {
		return EditRecord{}, false
	}
	rec := h.records[h.index]
	h.index--
	return rec, true
}

// Redo steps forward one record and returns it.
// Returns false when there is nothing to redo.
func (h *UndoStack) Redo() (EditRecord, bool) {
	if h.index >= len(h.records)-1 {
		return EditRecord{}, false
	}
	h.index++
	return h.records[h.index], true
}

// CanUndo reports whether Undo would return a record.
func (h *UndoStack) CanUndo() bool {
	return h.index >= 0
}

// CanRedo reports whether Redo would return a record.
func (h *UndoStack) CanRedo() bool {
	return h.index < len(h.records)-1
}

// Len returns the number of records, undoable and redoable.
func (h *UndoStack) Len() int {
	return len(h.records)
}

// UndoDepth returns how many records can be undone.
func (h *UndoStack) UndoDepth() int {
	return h.index + 1
}

// Records returns a copy of the history, oldest first.
func (h *UndoStack) Records() []EditRecord {
	out := make([]EditRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Clear empties the history.
func (h *UndoStack) Clear() {
	h.records = h.records[:0]
	h.index = -1
}
