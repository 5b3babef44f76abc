package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds color overrides from configuration. Empty fields keep the
// defaults.
type Theme struct {
	Muted   string
	Error   string
	Success string
}

// Validate checks every non-empty color is a #RGB or #RRGGBB hex value.
func (t Theme) Validate() error {
	for name, value := range map[string]string{"muted": t.Muted, "error": t.Error, "success": t.Success} {
		if value != "" && !IsHexColor(value) {
			return fmt.Errorf("invalid hex color for theme.%s: %s", name, value)
		}
	}
	return nil
}

// ApplyTheme applies t and rebuilds the derived styles.
func ApplyTheme(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Muted != "" {
		TextMutedColor = fixed(t.Muted)
		BorderDefaultColor = fixed(t.Muted)
	}
	if t.Error != "" {
		StatusErrorColor = fixed(t.Error)
	}
	if t.Success != "" {
		StatusSuccessColor = fixed(t.Success)
	}
	rebuildStyles()
	return nil
}

func fixed(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

// IsHexColor reports whether s is #RGB or #RRGGBB.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
