// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// Editor holds the text field bindings.
var Editor = struct {
	Left, Right, Up, Down    key.Binding
	WordLeft, WordRight      key.Binding
	Home, End                key.Binding
	SelectLeft, SelectRight  key.Binding
	SelectHome, SelectEnd    key.Binding
	Backspace, DeleteForward key.Binding
	Newline                  key.Binding
}{
	Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
	Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "line up")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "line down")),

	WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt+←", "word left")),
	WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt+→", "word right")),

	Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
	End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

	SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend selection")),
	SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend selection")),
	SelectHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
	SelectEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),

	Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete back")),
	DeleteForward: key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete forward")),
	Newline:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
}

// App holds the global bindings handled by the root model.
var App = struct {
	Menu key.Binding
	Undo key.Binding
	Redo key.Binding
	Find key.Binding
	Help key.Binding
	Logs key.Binding
	Quit key.Binding
}{
	Menu: key.NewBinding(key.WithKeys("ctrl+o", "shift+f10"), key.WithHelp("ctrl+o", "context menu")),
	Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
	Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	Find: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
	Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Logs: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "debug logs")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
}

// Menu holds the context menu bindings.
var Menu = struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("k", "up", "ctrl+p"), key.WithHelp("k/↑", "previous item")),
	Down:   key.NewBinding(key.WithKeys("j", "down", "ctrl+n"), key.WithHelp("j/↓", "next item")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
}

// Find holds the find prompt bindings.
var Find = struct {
	Submit key.Binding
	Cancel key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// Overlay closes the help overlay.
var Overlay = struct {
	Close key.Binding
}{
	Close: key.NewBinding(key.WithKeys("esc", "f1", "q"), key.WithHelp("esc", "close")),
}
