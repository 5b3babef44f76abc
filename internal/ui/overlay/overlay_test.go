package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func background(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestPlace_Center(t *testing.T) {
	result := Place(Config{Width: 5, Height: 3, Position: Center}, "XX\nXX", background(5, 3))

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".XX..", lines[0])
	assert.Equal(t, ".XX..", lines[1])
	assert.Equal(t, ".....", lines[2])
}

func TestPlace_Bottom_WithPadding(t *testing.T) {
	result := Place(Config{Width: 5, Height: 4, Position: Bottom, PadY: 1}, "XXX", background(5, 4))

	lines := strings.Split(result, "\n")
	assert.Equal(t, ".XXX.", lines[2])
	assert.Equal(t, ".....", lines[3])
}

func TestPlace_Anchored(t *testing.T) {
	result := Place(Config{Width: 10, Height: 4, Position: Anchored, X: 2, Y: 1}, "AB\nCD", background(10, 4))

	lines := strings.Split(result, "\n")
	assert.Equal(t, "..AB......", lines[1])
	assert.Equal(t, "..CD......", lines[2])
}

func TestPlace_ShortBackgroundIsPadded(t *testing.T) {
	result := Place(Config{Width: 4, Height: 3, Position: Anchored, X: 3, Y: 2}, "X", "ab")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   X", lines[2])
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true).Render("hello world")

	result := Place(Config{Width: 11, Height: 1, Position: Anchored, X: 6, Y: 0}, "WORLD", bg)

	assert.Equal(t, 11, lipgloss.Width(result))
	assert.Contains(t, result, "WORLD")
}

func TestOrigin_AnchoredFlips(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		w, h  int
		wantX int
		wantY int
	}{
		{"fits", Config{Width: 20, Height: 10, X: 3, Y: 2}, 5, 3, 3, 2},
		{"opens left at right edge", Config{Width: 20, Height: 10, X: 18, Y: 2}, 5, 3, 14, 2},
		{"opens up at bottom edge", Config{Width: 20, Height: 10, X: 3, Y: 9}, 5, 3, 3, 7},
		{"larger than viewport", Config{Width: 4, Height: 2, X: 1, Y: 1}, 8, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Position = Anchored
			x, y := Origin(tt.cfg, tt.w, tt.h)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
