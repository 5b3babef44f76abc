package menu

import (
	"fmt"
	"strings"
)

// Direction is the text flow of the bound field.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == RTL {
		return LTR
	}
	return RTL
}

// ParseDirection parses "ltr" or "rtl" (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("invalid text direction %q: must be ltr or rtl", s)
}

// DefaultPadding is the menu box padding in cells: top, right, bottom, left.
var DefaultPadding = [4]int{0, 1, 0, 1}

// Config holds the menu settings.
type Config struct {
	Verbosity       Verbosity
	EnableFindError bool
	Direction       Direction
	Padding         [4]int
	// TextColor is a lipgloss color for item labels. Empty uses the theme.
	TextColor string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Verbosity: Maximum,
		Direction: LTR,
		Padding:   DefaultPadding,
	}
}
