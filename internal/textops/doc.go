// Package textops holds the editing core behind the text context menu:
// clipboard operations, date/time stamping, find, and a linear undo/redo
// history.
//
// The core never talks to a widget directly. A host binds its text widget
// through TextSource and its clipboard through Clipboard, then calls
// Operations methods in response to user intents.
//
// Offset model:
//
// All positions (Selection bounds, cursor, Match bounds) are grapheme
// cluster indices, not byte offsets. "héllo" has 5 positions even
// though it is 6 bytes. Conversion helpers live in grapheme.go.
//
// Every content mutation goes through one code path that replaces a
// range on the TextSource and records exactly one EditRecord. Ranges come
// from the selection captured when the menu opened, so duplicate copies
// of the selected text elsewhere in the document are never touched.
package textops
