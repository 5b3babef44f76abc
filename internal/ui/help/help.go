// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/textmenu/internal/keys"
	"github.com/zjrosen/textmenu/internal/ui/overlay"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

// Section is a titled column of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Sections returns the columns shown by the overlay.
func Sections() []Section {
	return []Section{
		{Title: "Editing", Bindings: []key.Binding{
			keys.Editor.Left, keys.Editor.Right, keys.Editor.WordLeft, keys.Editor.Home,
			keys.Editor.End, keys.Editor.SelectLeft, keys.Editor.SelectEnd,
			keys.Editor.Backspace, keys.Editor.DeleteForward,
		}},
		{Title: "Commands", Bindings: []key.Binding{
			keys.App.Menu, keys.App.Undo, keys.App.Redo, keys.App.Find,
		}},
		{Title: "Context Menu", Bindings: []key.Binding{
			keys.Menu.Up, keys.Menu.Down, keys.Menu.Select, keys.Menu.Cancel,
		}},
		{Title: "General", Bindings: []key.Binding{
			keys.App.Help, keys.App.Quit,
		}},
	}
}

// Model holds the help view state.
type Model struct {
	width  int
	height int
}

// New creates a help overlay.
func New() Model {
	return Model{}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Overlay renders the help box centered over background.
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

// View renders the help box without positioning.
func (m Model) View() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	keyStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	sections := Sections()
	cols := make([]string, 0, len(sections))
	for i, s := range sections {
		var col strings.Builder
		col.WriteString(sectionStyle.Render(s.Title))
		for _, b := range s.Bindings {
			h := b.Help()
			col.WriteString("\n" + keyStyle.Render(h.Key) + descStyle.Render(h.Desc))
		}
		if i < len(sections)-1 {
			cols = append(cols, columnStyle.Render(col.String()))
		} else {
			cols = append(cols, col.String())
		}
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	boxWidth := lipgloss.Width(columns) + 4
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(2).Render("Keybindings")
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", boxWidth))
	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1).Render("Right-click or ctrl+o opens the menu · Esc to close")
	body := lipgloss.NewStyle().Padding(0, 2).Render(columns + "\n" + footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(title + "\n" + divider + "\n" + body)
}
