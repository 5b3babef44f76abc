package textops

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/textmenu/internal/log"
)

// Operations is the editing core bound to one TextSource.
// It is not safe for concurrent use; call it from the UI goroutine.
type Operations struct {
	src     TextSource
	clip    Clipboard
	history *UndoStack
	now     func() time.Time

	// snapshot is the selection captured when the context menu opened.
	snapshot Selection
}

// Option configures Operations.
type Option func(*Operations)

// WithClipboard sets the clipboard. A nil clipboard behaves as unavailable.
func WithClipboard(c Clipboard) Option {
	return func(o *Operations) {
		o.clip = c
	}
}

// WithClock overrides time.Now for InsertTimestamp.
func WithClock(now func() time.Time) Option {
	return func(o *Operations) {
		o.now = now
	}
}

// WithHistoryLimit bounds the undo history. n <= 0 keeps everything.
func WithHistoryLimit(n int) Option {
	return func(o *Operations) {
		o.history = NewUndoStack(n)
	}
}

// New binds an Operations to src.
func New(src TextSource, opts ...Option) *Operations {
	o := &Operations{
		src:     src,
		history: NewUndoStack(0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Source returns the bound TextSource.
func (o *Operations) Source() TextSource {
	return o.src
}

// History returns the undo history.
func (o *Operations) History() *UndoStack {
	return o.history
}

// CanUndo reports whether Undo has anything to revert.
func (o *Operations) CanUndo() bool {
	return o.history.CanUndo()
}

// CanRedo reports whether Redo has anything to reapply.
func (o *Operations) CanRedo() bool {
	return o.history.CanRedo()
}

// CaptureSelection stores the live selection as the snapshot menu actions
// act on. Call it when the menu opens.
func (o *Operations) CaptureSelection() Selection {
	o.snapshot = o.src.Selection().Normalize()
	return o.snapshot
}

// Snapshot returns the selection captured by CaptureSelection.
func (o *Operations) Snapshot() Selection {
	return o.snapshot
}

// ClearSnapshot forgets the captured selection.
func (o *Operations) ClearSnapshot() {
	o.snapshot = Selection{}
}

// SelectAll selects the entire content.
func (o *Operations) SelectAll() {
	o.src.Select(0, GraphemeCount(o.src.Text()))
}

// Clear empties the content. Already-empty content records nothing.
func (o *Operations) Clear() {
	prev := o.src.Text()
	if prev == "" {
		return
	}
	cursor := o.src.Cursor()
	o.src.SetText("")
	o.recordEdit(EditClear, prev, o.src.Text(), cursor, 0)
}

// Copy writes the selected text to the clipboard. An empty selection is
// a no-op. Clipboard failures are logged and returned wrapped in
// ErrClipboardUnavailable; the content never changes.
func (o *Operations) Copy(sel Selection) error {
	text := o.src.Text()
	sel = sel.clamp(GraphemeCount(text))
	if sel.IsEmpty() {
		return nil
	}
	return o.writeClipboard(SliceByGraphemes(text, sel.Start, sel.End))
}

// Cut copies the selection and then removes it. The removal happens even
// when the clipboard write failed; that error is still returned.
func (o *Operations) Cut(sel Selection) error {
	text := o.src.Text()
	sel = sel.clamp(GraphemeCount(text))
	if sel.IsEmpty() {
		return nil
	}
	err := o.writeClipboard(SliceByGraphemes(text, sel.Start, sel.End))
	o.replace(EditCut, sel.Start, sel.End, "")
	return err
}

// Paste replaces the selection with the clipboard content, or inserts it
// at cursor when sel is empty. An unavailable clipboard pastes "".
func (o *Operations) Paste(sel Selection, cursor int) error {
	content, err := o.readClipboard()
	o.insertOrReplace(EditPaste, sel, cursor, content)
	return err
}

// Delete removes the selected range. An empty selection is a no-op.
func (o *Operations) Delete(sel Selection) {
	sel = sel.clamp(GraphemeCount(o.src.Text()))
	if sel.IsEmpty() {
		return
	}
	o.replace(EditDelete, sel.Start, sel.End, "")
}

// InsertTimestamp inserts the current "yyyy/MM/dd HH:mm:ss" stamp at
// cursor, or over the selection when there is one.
func (o *Operations) InsertTimestamp(sel Selection, cursor int) {
	o.insertOrReplace(EditTimestamp, sel, cursor, FormatTimestamp(o.now()))
}

// FindAndSelect selects the leftmost match of query in the content.
// Returns ErrTextNotFound when there is none; the selection is unchanged.
func (o *Operations) FindAndSelect(query string) (Match, error) {
	m, ok := Find(o.src.Text(), query)
	if !ok {
		log.Debug(log.CatOps, "find: no match", "query", query)
		return Match{}, fmt.Errorf("%w: %q", ErrTextNotFound, query)
	}
	o.src.Select(m.Start, m.End)
	return m, nil
}

// Type replaces the live selection with text, or inserts at the cursor.
func (o *Operations) Type(text string) {
	o.insertOrReplace(EditType, o.src.Selection(), o.src.Cursor(), text)
}

// Backspace removes the live selection, or the grapheme before the cursor.
func (o *Operations) Backspace() {
	sel := o.src.Selection().Normalize()
	if !sel.IsEmpty() {
		o.replace(EditBackspace, sel.Start, sel.End, "")
		return
	}
	if c := o.src.Cursor(); c > 0 {
		o.replace(EditBackspace, c-1, c, "")
	}
}

// DeleteForward removes the live selection, or the grapheme after the cursor.
func (o *Operations) DeleteForward() {
	sel := o.src.Selection().Normalize()
	if !sel.IsEmpty() {
		o.replace(EditDeleteForward, sel.Start, sel.End, "")
		return
	}
	c := o.src.Cursor()
	if c < GraphemeCount(o.src.Text()) {
		o.replace(EditDeleteForward, c, c+1, "")
	}
}

// Replace replaces [start, end) with text and records the edit.
func (o *Operations) Replace(start, end int, text string) {
	o.replace(EditReplace, start, end, text)
}

// Undo restores the text before the most recent edit.
// Returns false when there is nothing to undo.
func (o *Operations) Undo() bool {
	rec, ok := o.history.Undo()
	if !ok {
		return false
	}
	o.src.SetText(rec.Previous)
	o.src.Select(rec.CursorBefore, rec.CursorBefore)
	log.Debug(log.CatOps, "undo", "kind", rec.Kind, "id", rec.ID)
	return true
}

// Redo reapplies the most recently undone edit.
// Returns false when there is nothing to redo.
func (o *Operations) Redo() bool {
	rec, ok := o.history.Redo()
	if !ok {
		return false
	}
	o.src.SetText(rec.Next)
	o.src.Select(rec.CursorAfter, rec.CursorAfter)
	log.Debug(log.CatOps, "redo", "kind", rec.Kind, "id", rec.ID)
	return true
}

// insertOrReplace writes text over sel when it is non-empty, else at cursor.
func (o *Operations) insertOrReplace(kind EditKind, sel Selection, cursor int, text string) {
	n := GraphemeCount(o.src.Text())
	sel = sel.clamp(n)
	if !sel.IsEmpty() {
		o.replace(kind, sel.Start, sel.End, text)
		return
	}
	cursor = min(max(cursor, 0), n)
	o.replace(kind, cursor, cursor, text)
}

// replace is the single mutation path. It edits by index, never by
// searching for the selected text.
func (o *Operations) replace(kind EditKind, start, end int, text string) {
	prev := o.src.Text()
	r := NewSelection(start, end).clamp(GraphemeCount(prev))
	cursor := o.src.Cursor()

	o.src.ReplaceRange(r.Start, r.End, text)

	// Inserted text can merge with a neighbouring cluster, so the caret is
	// placed before the unchanged suffix rather than after len(text).
	next := GraphemeCount(o.src.Text())
	after := max(next-(GraphemeCount(prev)-r.End), r.Start)
	o.src.Select(after, after)
	o.recordEdit(kind, prev, o.src.Text(), cursor, after)
}

// recordEdit appends an EditRecord, truncating any redo tail.
// No-op edits are not recorded.
func (o *Operations) recordEdit(kind EditKind, previous, next string, cursorBefore, cursorAfter int) {
	if previous == next {
		return
	}
	rec := EditRecord{
		ID:           uuid.NewString(),
		Kind:         kind,
		Previous:     previous,
		Next:         next,
		CursorBefore: cursorBefore,
		CursorAfter:  cursorAfter,
		At:           o.now(),
	}
	o.history.Push(rec)

	if log.Enabled() {
		s := rec.Summary()
		log.Debug(log.CatOps, "edit recorded", "kind", kind, "id", rec.ID,
			"inserted", s.Inserted, "deleted", s.Deleted, "depth", o.history.UndoDepth())
	}
}

func (o *Operations) writeClipboard(text string) error {
	if o.clip == nil {
		log.Warn(log.CatClipboard, "copy skipped: no clipboard")
		return ErrClipboardUnavailable
	}
	if err := o.clip.Copy(text); err != nil {
		log.ErrorErr(log.CatClipboard, "copy failed", err)
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}

func (o *Operations) readClipboard() (string, error) {
	if o.clip == nil {
		log.Warn(log.CatClipboard, "paste skipped: no clipboard")
		return "", ErrClipboardUnavailable
	}
	content, err := o.clip.Paste()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "paste failed", err)
		return "", fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return content, nil
}
