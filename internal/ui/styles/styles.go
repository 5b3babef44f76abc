// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}
	TextDisabledColor    = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#555555"} // Disabled menu items

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Text field
	SelectionBgColor = lipgloss.AdaptiveColor{Light: "#B4D5FE", Dark: "#264F78"}

	// Overlays
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	SelectionIndicatorStyle lipgloss.Style
	SelectedTextStyle       lipgloss.Style
	CursorStyle             lipgloss.Style
	MutedStyle              lipgloss.Style
	DisabledStyle           lipgloss.Style
	StatusBarStyle          lipgloss.Style
	ErrorStyle              lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	SelectedTextStyle = lipgloss.NewStyle().Background(SelectionBgColor)
	CursorStyle = lipgloss.NewStyle().Reverse(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	DisabledStyle = lipgloss.NewStyle().Foreground(TextDisabledColor)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true)
}
