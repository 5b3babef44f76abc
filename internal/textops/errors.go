package textops

import "errors"

var (
	// ErrClipboardUnavailable wraps any clipboard read or write failure.
	// Operations that hit it still complete in degraded form.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrTextNotFound is returned by FindAndSelect when the query has no match.
	ErrTextNotFound = errors.New("text not found")
)
