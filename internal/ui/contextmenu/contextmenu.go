// Package contextmenu provides the popup menu opened over the text field.
package contextmenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/textmenu/internal/keys"
	"github.com/zjrosen/textmenu/internal/log"
	"github.com/zjrosen/textmenu/internal/menu"
	"github.com/zjrosen/textmenu/internal/ui/overlay"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

const boxZoneID = "contextmenu-box"

func itemZoneID(i int) string {
	return fmt.Sprintf("contextmenu-item-%d", i)
}

// SelectMsg is sent when an enabled item is chosen.
type SelectMsg struct {
	Item menu.Item
}

// CancelMsg is sent when the menu closes without a choice.
type CancelMsg struct{}

// Model holds the menu state.
type Model struct {
	cfg     menu.Config
	entries []menu.Entry
	state   menu.State
	// selected indexes entries; -1 when no entry is enabled.
	selected int
	open     bool

	// x, y is the anchor cell.
	x, y           int
	viewportWidth  int
	viewportHeight int
}

// New creates a closed menu.
func New(cfg menu.Config) Model {
	return Model{
		cfg:      cfg,
		entries:  menu.Layout(cfg.Verbosity),
		selected: -1,
	}
}

// SetConfig replaces the settings. An open menu keeps its state.
func (m Model) SetConfig(cfg menu.Config) Model {
	m.cfg = cfg
	m.entries = menu.Layout(cfg.Verbosity)
	if m.selected >= len(m.entries) || (m.selected >= 0 && !m.selectable(m.selected)) {
		m.selected = m.next(-1, 1)
	}
	return m
}

// Config returns the settings.
func (m Model) Config() menu.Config {
	return m.cfg
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// Open shows the menu at cell (x, y) with enablement from state.
func (m Model) Open(state menu.State, x, y int) Model {
	m.state = state
	m.x, m.y = x, y
	m.open = true
	m.selected = m.next(-1, 1)
	log.Debug(log.CatMenu, "menu opened", "x", x, "y", y,
		"verbosity", m.cfg.Verbosity, "selection", state.HasSelection)
	return m
}

// Close hides the menu.
func (m Model) Close() Model {
	m.open = false
	return m
}

// IsOpen reports whether the menu is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// Entries returns the rows of the current layout.
func (m Model) Entries() []menu.Entry {
	return m.entries
}

// Selected returns the highlighted item. ok is false when nothing is
// selectable.
func (m Model) Selected() (menu.Item, bool) {
	if m.selected < 0 {
		return 0, false
	}
	return m.entries[m.selected].Item, true
}

func (m Model) selectable(i int) bool {
	e := m.entries[i]
	return !e.Separator && menu.Enabled(e.Item, m.state)
}

// next returns the first selectable entry after from in direction dir,
// wrapping around. -1 when there is none.
func (m Model) next(from, dir int) int {
	n := len(m.entries)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if m.selectable(i) {
			return i
		}
	}
	return -1
}

// Update handles messages while the menu is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Menu.Down):
			if m.selected >= 0 {
				m.selected = m.next(m.selected, 1)
			}
		case key.Matches(msg, keys.Menu.Up):
			if m.selected >= 0 {
				m.selected = m.next(m.selected, -1)
			}
		case key.Matches(msg, keys.Menu.Select):
			return m.choose(m.selected)
		case key.Matches(msg, keys.Menu.Cancel):
			return m.cancel()
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	hit := -1
	for i := range m.entries {
		if z := zone.Get(itemZoneID(i)); z != nil && z.InBounds(msg) {
			hit = i
			break
		}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if hit >= 0 && m.selectable(hit) {
			m.selected = hit
		}
	case tea.MouseActionPress:
		if hit >= 0 {
			if msg.Button == tea.MouseButtonLeft {
				return m.choose(hit)
			}
			return m, nil
		}
		if z := zone.Get(boxZoneID); z != nil && z.InBounds(msg) {
			return m, nil
		}
		return m.cancel()
	}
	return m, nil
}

func (m Model) choose(i int) (Model, tea.Cmd) {
	if i < 0 || !m.selectable(i) {
		return m, nil
	}
	item := m.entries[i].Item
	m.open = false
	log.Debug(log.CatMenu, "menu item chosen", "item", item)
	return m, func() tea.Msg { return SelectMsg{Item: item} }
}

func (m Model) cancel() (Model, tea.Cmd) {
	m.open = false
	return m, func() tea.Msg { return CancelMsg{} }
}

// width is the inner label column width.
func (m Model) width() int {
	w := 0
	for _, e := range m.entries {
		if !e.Separator {
			w = max(w, lipgloss.Width(e.Item.Label()))
		}
	}
	// Selection indicator and check mark columns.
	return w + 4
}

// View renders the menu box without positioning.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if m.cfg.TextColor != "" {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.TextColor))
	}
	separatorStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	width := m.width()

	rows := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		if e.Separator {
			rows = append(rows, separatorStyle.Render(strings.Repeat("─", width)))
			continue
		}

		indicator := " "
		if i == m.selected {
			indicator = styles.SelectionIndicatorStyle.Render(">")
		}
		check := "  "
		if e.Item == menu.RightToLeft && m.state.RightToLeft {
			check = "✓ "
		}

		label := e.Item.Label()
		switch {
		case !menu.Enabled(e.Item, m.state):
			label = styles.DisabledStyle.Render(label)
		case i == m.selected:
			label = labelStyle.Bold(true).Render(label)
		default:
			label = labelStyle.Render(label)
		}

		line := indicator + check + label
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, zone.Mark(itemZoneID(i), line))
	}

	p := m.cfg.Padding
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(p[0], p[1], p[2], p[3]).
		Render(strings.Join(rows, "\n"))
	return zone.Mark(boxZoneID, box)
}

// Overlay renders the menu at its anchor over background.
func (m Model) Overlay(background string) string {
	if !m.open {
		return background
	}
	return overlay.Place(overlay.Config{
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Position: overlay.Anchored,
		X:        m.x,
		Y:        m.y,
	}, m.View(), background)
}
