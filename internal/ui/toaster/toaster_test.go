package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View(0))
}

func TestShowHide(t *testing.T) {
	m := New().Show("Hello", StyleSuccess)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(0), "Hello")

	m = m.Hide()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View(0))
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.Contains(t, m.View(0), "Second")
	assert.NotContains(t, m.View(0), "First")
}

func TestView_Icons(t *testing.T) {
	tests := []struct {
		style Style
		icon  string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleInfo, "ℹ️"},
		{StyleWarn, "⚠️"},
	}
	for _, tt := range tests {
		assert.Contains(t, New().Show("msg", tt.style).View(0), tt.icon)
	}
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := New().Show(strings.Repeat("long ", 20), StyleError)

	view := m.View(30)

	assert.LessOrEqual(t, lipgloss.Width(view), 30)
	assert.Contains(t, view, "…")
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "line1\nline2"

	assert.Equal(t, bg, New().Overlay(bg, 5, 2))
}

func TestOverlay_PlacesAtBottom(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)

	result := New().Show("Hi", StyleInfo).Overlay(bg, 40, 10)

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat(".", 40), lines[0])
	assert.Contains(t, lines[7], "Hi", "box bottom sits one row above the edge")
	assert.Equal(t, strings.Repeat(".", 40), lines[9])
}

func TestDismiss_MatchesCurrentToast(t *testing.T) {
	m := New().Show("one", StyleInfo)

	msg := m.ScheduleDismiss(time.Millisecond)()
	m = m.Update(msg)

	assert.False(t, m.Visible())
}

func TestDismiss_StaleIgnored(t *testing.T) {
	m := New().Show("one", StyleInfo)
	stale := m.ScheduleDismiss(time.Millisecond)()

	m = m.Show("two", StyleWarn)
	m = m.Update(stale)

	assert.True(t, m.Visible())
	assert.Equal(t, "two", m.Message())
}
