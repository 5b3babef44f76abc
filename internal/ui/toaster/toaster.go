// Package toaster shows short notifications over the editor. It is the
// host's dialog for find misses and clipboard warnings.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/textmenu/internal/ui/overlay"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the current toast so a stale dismiss is ignored.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message, replacing any visible toast.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that hides the current toast after d.
// A toast shown in the meantime is left alone.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box, truncated to maxWidth cells when positive.
func (m Model) View(maxWidth int) string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.StatusErrorColor)
		icon = "❌ "
	case StyleInfo:
		style = style.BorderForeground(styles.StatusInfoColor)
		icon = "ℹ️ "
	case StyleWarn:
		style = style.BorderForeground(styles.StatusWarningColor)
		icon = "⚠️ "
	default:
		style = style.BorderForeground(styles.StatusSuccessColor)
		icon = "✅ "
	}

	content := icon + m.message
	// Border and padding take four cells.
	if inner := maxWidth - 4; maxWidth > 0 && lipgloss.Width(content) > inner {
		content = truncate.StringWithTail(content, uint(max(inner, 1)), "…")
	}
	return style.Render(content)
}

// Overlay renders the toast at the bottom center of bg.
func (m Model) Overlay(bg string, width, height int) string {
	fg := m.View(width)
	if fg == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, fg, bg)
}
