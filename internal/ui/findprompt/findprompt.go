// Package findprompt provides the input dialog that asks for a search term.
package findprompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/textmenu/internal/keys"
	"github.com/zjrosen/textmenu/internal/ui/overlay"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

const (
	Title  = "Search..."
	Prompt = "Type text you want to search"
)

// SubmitMsg carries a non-empty search term.
type SubmitMsg struct {
	Query string
}

// CancelMsg is sent on esc or when an empty term is submitted.
type CancelMsg struct{}

// Model holds the dialog state.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New returns a focused, empty prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "text"
	ti.CharLimit = 256
	ti.Width = 36
	ti.Focus()
	return Model{input: ti}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Value returns the current input.
func (m Model) Value() string {
	return m.input.Value()
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Find.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }
		case key.Matches(msg, keys.Find.Submit):
			query := m.input.Value()
			if query == "" {
				return m, func() tea.Msg { return CancelMsg{} }
			}
			return m, func() tea.Msg { return SubmitMsg{Query: query} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the dialog box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	promptStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).PaddingLeft(1)
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(m.input.Width + 1)
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).PaddingLeft(1)

	width := m.input.Width + 4
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))

	content := titleStyle.Render(Title) + "\n" +
		divider + "\n" +
		promptStyle.Render(Prompt) + "\n" +
		lipgloss.NewStyle().PaddingLeft(1).Render(inputStyle.Render(m.input.View())) + "\n" +
		hintStyle.Render("enter search · esc cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(content)
}

// Overlay renders the dialog centered over background.
func (m Model) Overlay(background string) string {
	box := m.View()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}
