package contextmenu

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textmenu/internal/menu"
)

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var (
	withSelection = menu.State{HasSelection: true}
	emptyText     = menu.State{TextEmpty: true}
)

func openMenu(v menu.Verbosity, state menu.State) Model {
	cfg := menu.DefaultConfig()
	cfg.Verbosity = v
	return New(cfg).SetSize(80, 24).Open(state, 2, 1)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func selectedItem(t *testing.T, m Model) menu.Item {
	t.Helper()
	item, ok := m.Selected()
	require.True(t, ok, "expected a selected item")
	return item
}

func TestOpen_SelectsFirstEnabled(t *testing.T) {
	m := openMenu(menu.Maximum, withSelection)

	assert.True(t, m.IsOpen())
	assert.Equal(t, menu.SelectAll, selectedItem(t, m))
}

func TestOpen_EmptyTextSkipsDisabled(t *testing.T) {
	m := openMenu(menu.Maximum, emptyText)

	assert.Equal(t, menu.Paste, selectedItem(t, m), "select all, cut and copy need text or a selection")
}

func TestNavigate_SkipsSeparatorsAndDisabled(t *testing.T) {
	m := openMenu(menu.Maximum, menu.State{})

	m, _ = m.Update(keyRune('j'))
	assert.Equal(t, menu.Paste, selectedItem(t, m), "cut and copy are disabled without a selection")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, menu.DateTime, selectedItem(t, m), "delete is disabled; separator is skipped")

	m, _ = m.Update(keyRune('k'))
	assert.Equal(t, menu.Paste, selectedItem(t, m))
}

func TestNavigate_Wraps(t *testing.T) {
	m := openMenu(menu.Minimum, withSelection)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, menu.Delete, selectedItem(t, m))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, menu.SelectAll, selectedItem(t, m))
}

func TestEnter_EmitsSelectMsg(t *testing.T) {
	m := openMenu(menu.Normal, withSelection)
	m, _ = m.Update(keyRune('j'))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, SelectMsg{Item: menu.Cut}, cmd())
	assert.False(t, m.IsOpen())
}

func TestEsc_EmitsCancelMsg(t *testing.T) {
	m := openMenu(menu.Normal, withSelection)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.False(t, m.IsOpen())
}

func TestClosed_IgnoresInput(t *testing.T) {
	m := New(menu.DefaultConfig())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.IsOpen())
}

func TestView_LabelsPerVerbosity(t *testing.T) {
	view := ansi.Strip(openMenu(menu.Maximum, withSelection).View())
	for _, label := range []string{"Select all", "Cut", "Copy", "Paste", "Delete", "Date/Time", "Right To Left", "Clear", "Find"} {
		assert.Contains(t, view, label)
	}

	normal := ansi.Strip(openMenu(menu.Normal, withSelection).View())
	assert.NotContains(t, normal, "Right To Left")
	assert.NotContains(t, normal, "Find")
	assert.Contains(t, normal, "Clear")

	minimum := ansi.Strip(openMenu(menu.Minimum, withSelection).View())
	assert.NotContains(t, minimum, "Date/Time")
	assert.NotContains(t, minimum, "Clear")
}

func TestView_RightToLeftCheck(t *testing.T) {
	off := ansi.Strip(openMenu(menu.Maximum, menu.State{}).View())
	on := ansi.Strip(openMenu(menu.Maximum, menu.State{RightToLeft: true}).View())

	assert.NotContains(t, off, "✓")
	assert.Contains(t, on, "✓ Right To Left")
}

func TestOverlay_ClosedReturnsBackground(t *testing.T) {
	bg := "some text"

	assert.Equal(t, bg, New(menu.DefaultConfig()).Overlay(bg))
}

func TestOverlay_DrawsAtAnchor(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	m := openMenu(menu.Minimum, withSelection)

	out := strings.Split(ansi.Strip(zone.Scan(m.Overlay(bg))), "\n")

	assert.Equal(t, strings.Repeat(".", 80), out[0])
	assert.True(t, strings.HasPrefix(out[1], "..╭"), "box corner sits at the anchor")
}

func TestSetConfig_ChangesLayout(t *testing.T) {
	m := openMenu(menu.Maximum, withSelection)

	cfg := m.Config()
	cfg.Verbosity = menu.Minimum
	m = m.SetConfig(cfg)

	assert.Len(t, m.Entries(), 6)
	assert.True(t, m.IsOpen())
}

// zoneFor waits for bubblezone to register id after a scan.
func zoneFor(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 80)+"\n", 24), "\n")
	var z *zone.ZoneInfo
	for retries := 0; retries < 10; retries++ {
		_ = zone.Scan(m.Overlay(bg))
		z = zone.Get(id)
		if z != nil && !z.IsZero() {
			break
		}
		// Zone registration is processed by a bubblezone worker goroutine.
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z, "zone should be registered after Scan")
	require.False(t, z.IsZero())
	return z
}

func TestMouse_LeftClickSelectsItem(t *testing.T) {
	m := openMenu(menu.Minimum, withSelection)
	z := zoneFor(t, m, itemZoneID(3)) // Copy

	m, cmd := m.Update(tea.MouseMsg{
		X: z.StartX + 1, Y: z.StartY,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})

	require.NotNil(t, cmd)
	assert.Equal(t, SelectMsg{Item: menu.Copy}, cmd())
	assert.False(t, m.IsOpen())
}

func TestMouse_ClickOnDisabledItemDoesNothing(t *testing.T) {
	m := openMenu(menu.Minimum, menu.State{})
	z := zoneFor(t, m, itemZoneID(2)) // Cut, disabled without selection

	m, cmd := m.Update(tea.MouseMsg{
		X: z.StartX + 1, Y: z.StartY,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})

	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen())
}

func TestMouse_ClickOutsideCancels(t *testing.T) {
	m := openMenu(menu.Minimum, withSelection)
	_ = zoneFor(t, m, boxZoneID)

	m, cmd := m.Update(tea.MouseMsg{
		X: 70, Y: 20,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})

	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.False(t, m.IsOpen())
}

func TestMouse_HoverMovesSelection(t *testing.T) {
	m := openMenu(menu.Minimum, withSelection)
	z := zoneFor(t, m, itemZoneID(5)) // Delete

	m, _ = m.Update(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Action: tea.MouseActionMotion})

	assert.Equal(t, menu.Delete, selectedItem(t, m))
}
