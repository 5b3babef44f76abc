// Package config provides configuration types, defaults, and persistence
// for textmenu.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zjrosen/textmenu/internal/clipboard"
	"github.com/zjrosen/textmenu/internal/log"
	"github.com/zjrosen/textmenu/internal/menu"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

// Config holds all configuration options for textmenu.
type Config struct {
	Menu      MenuSettings    `mapstructure:"menu"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	History   HistoryConfig   `mapstructure:"history"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// MenuSettings holds the context menu options.
type MenuSettings struct {
	Verbosity       string `mapstructure:"verbosity"`         // "maximum" (default), "normal" or "minimum"
	EnableFindError bool   `mapstructure:"enable_find_error"` // Show a dialog when find has no match
	TextDirection   string `mapstructure:"text_direction"`    // "ltr" (default) or "rtl"
	Padding         []int  `mapstructure:"padding"`           // top, right, bottom, left in cells
	TextColor       string `mapstructure:"text_color"`        // hex or ANSI 0-255, empty for theme
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `mapstructure:"backend"` // "system" (default), "memory" or "none"
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	Limit int `mapstructure:"limit"` // 0 keeps every edit
}

// ThemeConfig holds color overrides. Empty values keep the defaults.
type ThemeConfig struct {
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Menu: MenuSettings{
			Verbosity:     menu.Maximum.String(),
			TextDirection: menu.LTR.String(),
			Padding:       append([]int(nil), menu.DefaultPadding[:]...),
		},
		Clipboard: ClipboardConfig{
			Backend: clipboard.BackendSystem,
		},
	}
}

// Validate checks every field and joins all problems into one error.
func Validate(cfg Config) error {
	var errs []error

	if _, err := menu.ParseVerbosity(cfg.Menu.Verbosity); err != nil {
		errs = append(errs, fmt.Errorf("menu.verbosity: %w", err))
	}
	if _, err := menu.ParseDirection(cfg.Menu.TextDirection); err != nil {
		errs = append(errs, fmt.Errorf("menu.text_direction: %w", err))
	}
	if err := validatePadding(cfg.Menu.Padding); err != nil {
		errs = append(errs, fmt.Errorf("menu.padding: %w", err))
	}
	if c := cfg.Menu.TextColor; c != "" && !isTerminalColor(c) {
		errs = append(errs, fmt.Errorf("menu.text_color: invalid color %q", c))
	}

	switch cfg.Clipboard.Backend {
	case clipboard.BackendSystem, clipboard.BackendMemory, clipboard.BackendNone:
	default:
		errs = append(errs, fmt.Errorf("clipboard.backend: %w: %q", clipboard.ErrUnknownBackend, cfg.Clipboard.Backend))
	}

	if cfg.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit: must be >= 0, got %d", cfg.History.Limit))
	}

	if err := cfg.StyleTheme().Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validatePadding(p []int) error {
	if len(p) == 0 {
		return nil
	}
	if len(p) != 4 {
		return fmt.Errorf("need 4 values (top, right, bottom, left), got %d", len(p))
	}
	for _, v := range p {
		if v < 0 {
			return fmt.Errorf("values must be >= 0, got %d", v)
		}
	}
	return nil
}

// isTerminalColor accepts #RGB/#RRGGBB or an ANSI 256 index.
func isTerminalColor(s string) bool {
	if styles.IsHexColor(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// MenuConfig converts the menu settings. Invalid values fall back to the
// defaults; call Validate first to report them.
func (c Config) MenuConfig() menu.Config {
	out := menu.DefaultConfig()
	if v, err := menu.ParseVerbosity(c.Menu.Verbosity); err == nil {
		out.Verbosity = v
	}
	if d, err := menu.ParseDirection(c.Menu.TextDirection); err == nil {
		out.Direction = d
	}
	if len(c.Menu.Padding) == 4 {
		copy(out.Padding[:], c.Menu.Padding)
	}
	out.EnableFindError = c.Menu.EnableFindError
	out.TextColor = c.Menu.TextColor
	return out
}

// StyleTheme returns the theme overrides for styles.ApplyTheme.
func (c Config) StyleTheme() styles.Theme {
	return styles.Theme{
		Muted:   c.Theme.Muted,
		Error:   c.Theme.Error,
		Success: c.Theme.Success,
	}
}

// File locations and environment.
const (
	LocalConfigDir = ".textmenu"
	UserConfigDir  = "textmenu"
	ConfigFileName = "config.yaml"

	// EnvDebug enables debug logging when set to any value.
	EnvDebug = "TEXTMENU_DEBUG"
	// EnvLogFile overrides DefaultLogFile.
	EnvLogFile     = "TEXTMENU_LOG"
	DefaultLogFile = "debug.log"
)

// LocalConfigPath is ./.textmenu/config.yaml.
func LocalConfigPath() string {
	return filepath.Join(LocalConfigDir, ConfigFileName)
}

// UserConfigPath is ~/.config/textmenu/config.yaml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", UserConfigDir, ConfigFileName), nil
}

// DefaultConfigTemplate returns the commented config written by
// "textmenu config init".
func DefaultConfigTemplate() string {
	return `# textmenu configuration

menu:
  # Which items the right-click menu shows:
  #   maximum: select all, cut/copy/paste/delete, date/time,
  #            right to left, clear, find
  #   normal:  as maximum without right to left and find
  #   minimum: select all, cut/copy/paste/delete
  verbosity: maximum

  # Show a dialog when find has no match.
  enable_find_error: false

  # Text flow of the field: ltr or rtl. The menu toggle saves here.
  text_direction: ltr

  # Menu box padding in cells: top, right, bottom, left.
  padding: [0, 1, 0, 1]

  # Menu label color (hex like "#FF8787" or ANSI 0-255). Empty uses the theme.
  text_color: ""

clipboard:
  # system: OS clipboard (OSC 52 inside SSH/tmux)
  # memory: private to this process
  # none:   clipboard disabled
  backend: system

history:
  # Maximum undo steps. 0 keeps every edit.
  limit: 0

theme:
  # Hex color overrides. Empty keeps the default.
  muted: ""
  error: ""
  success: ""
`
}

// WriteDefaultConfig creates a config file with default settings.
// The parent directory is created if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
