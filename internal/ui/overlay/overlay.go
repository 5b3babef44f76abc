// Package overlay draws a box over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where the box goes.
type Position int

const (
	// Center places the box in the middle of the viewport.
	Center Position = iota
	// Bottom places the box at the bottom center, PadY cells above the edge.
	Bottom
	// Anchored places the box's top-left corner at (X, Y). A box that would
	// spill past the right or bottom edge opens to the left or upward.
	Anchored
)

// Config controls placement.
type Config struct {
	Width    int
	Height   int
	Position Position
	// PadY is the gap to the edge for Bottom.
	PadY int
	// X and Y are the anchor cell for Anchored.
	X, Y int
}

// Place renders fg on top of bg. Styling in both is preserved.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := Origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = splice(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// splice writes fg into line starting at display column x.
func splice(line, fg string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	end := x + ansi.StringWidth(fg)
	if end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + fg + right
}

// Origin returns the top-left cell where a w x h box lands under cfg.
func Origin(cfg Config, w, h int) (x, y int) {
	switch cfg.Position {
	case Bottom:
		x = (cfg.Width - w) / 2
		y = cfg.Height - h - cfg.PadY
	case Anchored:
		x, y = cfg.X, cfg.Y
		if x+w > cfg.Width {
			x = cfg.X - w + 1
		}
		if y+h > cfg.Height {
			y = cfg.Y - h + 1
		}
		x = min(x, cfg.Width-w)
		y = min(y, cfg.Height-h)
	default:
		x = (cfg.Width - w) / 2
		y = (cfg.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
