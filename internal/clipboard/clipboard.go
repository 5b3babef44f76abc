// Package clipboard provides the clipboard backends used by the editor.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zjrosen/textmenu/internal/log"
	"github.com/zjrosen/textmenu/internal/textops"
)

// Backend names accepted by New and the clipboard.backend config key.
const (
	BackendSystem = "system"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// ErrUnknownBackend is returned by New for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown clipboard backend")

// New returns the clipboard for backend. BackendNone yields a nil
// Clipboard, which textops treats as unavailable.
func New(backend string) (textops.Clipboard, error) {
	switch backend {
	case BackendSystem, "":
		sys := NewSystem()
		log.Debug(log.CatClipboard, "using system clipboard", "osc52", sys.osc52)
		return sys, nil
	case BackendMemory:
		return NewMemory(), nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty Memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Copy stores text.
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Paste returns the last copied text.
func (m *Memory) Paste() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
