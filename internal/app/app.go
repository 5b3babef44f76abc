// Package app contains the root Bubble Tea model: a text field with a
// context menu wired to the editing core.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/textmenu/internal/config"
	"github.com/zjrosen/textmenu/internal/keys"
	"github.com/zjrosen/textmenu/internal/log"
	"github.com/zjrosen/textmenu/internal/menu"
	"github.com/zjrosen/textmenu/internal/textops"
	"github.com/zjrosen/textmenu/internal/ui/contextmenu"
	"github.com/zjrosen/textmenu/internal/ui/findprompt"
	"github.com/zjrosen/textmenu/internal/ui/help"
	"github.com/zjrosen/textmenu/internal/ui/logoverlay"
	"github.com/zjrosen/textmenu/internal/ui/styles"
	"github.com/zjrosen/textmenu/internal/ui/textfield"
	"github.com/zjrosen/textmenu/internal/ui/toaster"
)

// Toast messages shown to the user.
const (
	FindErrorMessage       = "The text doesn't found."
	ClipboardErrorMessage  = "Clipboard unavailable"
	SaveDirectionErrorText = "Could not save text direction"
)

// ConfigReloadedMsg carries a configuration re-read from disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Options configures New.
type Options struct {
	Config      config.Config
	ConfigPath  string
	Clipboard   textops.Clipboard
	InitialText string
	// Extra options for the editing core, e.g. textops.WithClock in tests.
	OpsOptions []textops.Option
	DebugMode  bool
	// ForceRTL keeps right-to-left across config reloads until the user
	// toggles the direction from the menu.
	ForceRTL bool
}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	forceRTL   bool

	field *textfield.Model
	ops   *textops.Operations

	menu    contextmenu.Model
	find    findprompt.Model
	help    help.Model
	toaster toaster.Model

	finding  bool
	showHelp bool

	width  int
	height int

	debugMode   bool
	logOverlay  logoverlay.Model
	logCancel   context.CancelFunc
	logListener *log.LogListener
}

// New creates the application model.
func New(opts Options) Model {
	cfg := opts.Config
	if opts.ForceRTL {
		cfg.Menu.TextDirection = menu.RTL.String()
	}
	mc := cfg.MenuConfig()

	field := textfield.New()
	field.SetPlaceholder("Type here, right-click for the menu")
	field.SetDirection(mc.Direction)
	field.SetTextColor(mc.TextColor)
	field.SetText(opts.InitialText)

	coreOpts := []textops.Option{
		textops.WithClipboard(opts.Clipboard),
		textops.WithHistoryLimit(cfg.History.Limit),
	}
	coreOpts = append(coreOpts, opts.OpsOptions...)

	m := Model{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		forceRTL:   opts.ForceRTL,
		field:      field,
		ops:        textops.New(field, coreOpts...),
		menu:       contextmenu.New(mc),
		find:       findprompt.New(),
		help:       help.New(),
		toaster:    toaster.New(),
		debugMode:  opts.DebugMode,
		logOverlay: logoverlay.New(),
	}

	if opts.DebugMode {
		ctx, cancel := context.WithCancel(context.Background())
		if l := log.NewListener(ctx); l != nil {
			m.logListener = l
			m.logCancel = cancel
		} else {
			cancel()
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Text returns the current content.
func (m Model) Text() string {
	return m.field.Text()
}

// Operations returns the editing core.
func (m Model) Operations() *textops.Operations {
	return m.ops
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Rounded border takes two rows and columns, the status line one row.
		m.field.SetSize(max(msg.Width-2, 1), max(msg.Height-3, 1))
		m.menu = m.menu.SetSize(msg.Width, msg.Height)
		m.find = m.find.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		// Route to log overlay and keep listening
		m.logOverlay.Append(msg.Payload)
		if m.logListener != nil {
			return m, m.logListener.Listen()
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case contextmenu.SelectMsg:
		return m.handleMenuItem(msg.Item)

	case contextmenu.CancelMsg:
		m.ops.ClearSnapshot()
		return m, nil

	case findprompt.SubmitMsg:
		m.finding = false
		return m.handleFind(msg.Query)

	case findprompt.CancelMsg:
		m.finding = false
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.finding {
		var cmd tea.Cmd
		m.find, cmd = m.find.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.App.Quit) {
		return m, tea.Quit
	}

	if m.debugMode && key.Matches(msg, keys.App.Logs) {
		m.logOverlay.Toggle()
		return m, nil
	}

	// If the debug log overlay is visible it takes precedence for updates
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, keys.Overlay.Close) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.finding {
		var cmd tea.Cmd
		m.find, cmd = m.find.Update(msg)
		return m, cmd
	}

	if m.menu.IsOpen() {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.App.Menu):
		x, y := m.field.CursorCell()
		return m.openMenu(x+1, y+1)
	case key.Matches(msg, keys.App.Undo):
		m.ops.Undo()
		return m, nil
	case key.Matches(msg, keys.App.Redo):
		m.ops.Redo()
		return m, nil
	case key.Matches(msg, keys.App.Find):
		return m.openFind()
	case key.Matches(msg, keys.App.Help):
		m.showHelp = true
		return m, nil
	}

	if m.field.HandleKey(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Editor.Backspace):
		m.ops.Backspace()
	case key.Matches(msg, keys.Editor.DeleteForward):
		m.ops.DeleteForward()
	case key.Matches(msg, keys.Editor.Newline):
		m.ops.Type("\n")
	case msg.Type == tea.KeyRunes:
		m.ops.Type(string(msg.Runes))
	case msg.Type == tea.KeySpace:
		m.ops.Type(" ")
	case msg.Type == tea.KeyTab:
		m.ops.Type("\t")
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.menu.IsOpen() {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.finding || m.showHelp || m.logOverlay.Visible() {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight {
		return m.openMenu(msg.X, msg.Y)
	}
	return m, nil
}

// openMenu captures the selection and shows the menu anchored at (x, y).
func (m Model) openMenu(x, y int) (tea.Model, tea.Cmd) {
	snap := m.ops.CaptureSelection()
	state := menu.State{
		TextEmpty:    m.field.Text() == "",
		HasSelection: !snap.IsEmpty(),
		RightToLeft:  m.field.Direction() == menu.RTL,
	}
	m.menu = m.menu.Open(state, x, y)
	return m, nil
}

func (m Model) openFind() (tea.Model, tea.Cmd) {
	m.find = findprompt.New().SetSize(m.width, m.height)
	m.finding = true
	return m, m.find.Init()
}

// handleMenuItem runs the chosen action against the selection captured
// when the menu opened.
func (m Model) handleMenuItem(item menu.Item) (tea.Model, tea.Cmd) {
	sel := m.ops.Snapshot()
	cursor := m.field.Cursor()
	defer m.ops.ClearSnapshot()

	var err error
	switch item {
	case menu.SelectAll:
		m.ops.SelectAll()
	case menu.Cut:
		err = m.ops.Cut(sel)
	case menu.Copy:
		err = m.ops.Copy(sel)
	case menu.Paste:
		err = m.ops.Paste(sel, cursor)
	case menu.Delete:
		m.ops.Delete(sel)
	case menu.DateTime:
		m.ops.InsertTimestamp(sel, cursor)
	case menu.Clear:
		m.ops.Clear()
	case menu.RightToLeft:
		return m.toggleDirection()
	case menu.Find:
		return m.openFind()
	}

	if errors.Is(err, textops.ErrClipboardUnavailable) {
		return m.showToast(ClipboardErrorMessage, toaster.StyleWarn)
	}
	return m, nil
}

func (m Model) handleFind(query string) (tea.Model, tea.Cmd) {
	if _, err := m.ops.FindAndSelect(query); err != nil {
		if m.menu.Config().EnableFindError {
			return m.showToast(FindErrorMessage, toaster.StyleError)
		}
	}
	return m, nil
}

// toggleDirection flips the text direction and persists it when a config
// file is in use.
func (m Model) toggleDirection() (tea.Model, tea.Cmd) {
	dir := m.field.Direction().Toggle()
	m.forceRTL = false
	m.setDirection(dir)
	log.Info(log.CatMenu, "text direction toggled", "direction", dir)

	if m.configPath == "" {
		return m, nil
	}
	if err := config.SaveTextDirection(m.configPath, dir); err != nil {
		log.ErrorErr(log.CatConfig, "save text direction failed", err, "path", m.configPath)
		return m.showToast(SaveDirectionErrorText, toaster.StyleError)
	}
	return m, nil
}

func (m *Model) setDirection(dir menu.Direction) {
	m.field.SetDirection(dir)
	m.cfg.Menu.TextDirection = dir.String()
	mc := m.menu.Config()
	mc.Direction = dir
	m.menu = m.menu.SetConfig(mc)
}

// applyConfig re-applies the settings that can change at runtime. The
// clipboard backend and history limit keep their startup values, and a
// startup --rtl wins over the file's text_direction.
func (m *Model) applyConfig(cfg config.Config) {
	if err := config.Validate(cfg); err != nil {
		log.ErrorErr(log.CatConfig, "ignoring invalid config reload", err)
		return
	}
	if m.forceRTL {
		cfg.Menu.TextDirection = menu.RTL.String()
	}
	m.cfg = cfg
	mc := cfg.MenuConfig()
	m.menu = m.menu.SetConfig(mc)
	m.field.SetDirection(mc.Direction)
	m.field.SetTextColor(mc.TextColor)
	if err := styles.ApplyTheme(cfg.StyleTheme()); err != nil {
		log.ErrorErr(log.CatConfig, "theme reload failed", err)
	}
	log.Info(log.CatConfig, "config reloaded", "verbosity", mc.Verbosity, "direction", mc.Direction)
}

func (m Model) showToast(message string, style toaster.Style) (tea.Model, tea.Cmd) {
	m.toaster = m.toaster.Show(message, style)
	return m, m.toaster.ScheduleDismiss(toaster.DefaultDuration)
}

// View implements tea.Model.
func (m Model) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Render(m.field.View())
	view := lipgloss.JoinVertical(lipgloss.Left, box, m.statusLine())

	if m.menu.IsOpen() {
		view = m.menu.Overlay(view)
	}
	if m.finding {
		view = m.find.Overlay(view)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	// Overlay log viewer on top (only in debug mode when visible)
	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%s · %d undo · ctrl+o menu · f1 help",
		m.field.Direction(), m.ops.History().UndoDepth())
	if m.debugMode {
		status += " · ctrl+x logs"
	}
	if m.width > 0 {
		status = ansi.Truncate(status, max(m.width-2, 0), "…")
	}
	return styles.StatusBarStyle.Render(status)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	return nil
}
