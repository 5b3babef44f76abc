package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textmenu/internal/menu"
)

func TestDefaults_Validate(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestDefaultConfigTemplate_DecodesToDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, Defaults(), cfg)
}

func TestDefaults_PaddingIsACopy(t *testing.T) {
	cfg := Defaults()
	cfg.Menu.Padding[0] = 9

	assert.Equal(t, [4]int{0, 1, 0, 1}, menu.DefaultPadding)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad verbosity", func(c *Config) { c.Menu.Verbosity = "loud" }, "menu.verbosity"},
		{"bad direction", func(c *Config) { c.Menu.TextDirection = "up" }, "menu.text_direction"},
		{"short padding", func(c *Config) { c.Menu.Padding = []int{1, 2} }, "menu.padding"},
		{"negative padding", func(c *Config) { c.Menu.Padding = []int{0, -1, 0, 1} }, "menu.padding"},
		{"bad text color", func(c *Config) { c.Menu.TextColor = "purple" }, "menu.text_color"},
		{"bad backend", func(c *Config) { c.Clipboard.Backend = "cloud" }, "clipboard.backend"},
		{"negative limit", func(c *Config) { c.History.Limit = -1 }, "history.limit"},
		{"bad theme color", func(c *Config) { c.Theme.Error = "#XYZ" }, "theme.error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Menu.Verbosity = "loud"
	cfg.History.Limit = -3

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu.verbosity")
	assert.Contains(t, err.Error(), "history.limit")
}

func TestValidate_AcceptsColors(t *testing.T) {
	cfg := Defaults()
	cfg.Menu.TextColor = "205"
	cfg.Theme.Muted = "#888"

	require.NoError(t, Validate(cfg))
}

func TestMenuConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Menu.Verbosity = "Normal"
	cfg.Menu.TextDirection = "rtl"
	cfg.Menu.EnableFindError = true
	cfg.Menu.Padding = []int{1, 2, 3, 4}
	cfg.Menu.TextColor = "#FF8787"

	got := cfg.MenuConfig()

	assert.Equal(t, menu.Config{
		Verbosity:       menu.Normal,
		EnableFindError: true,
		Direction:       menu.RTL,
		Padding:         [4]int{1, 2, 3, 4},
		TextColor:       "#FF8787",
	}, got)
}

func TestMenuConfig_InvalidFallsBack(t *testing.T) {
	cfg := Config{Menu: MenuSettings{Verbosity: "?", TextDirection: "?", Padding: []int{7}}}

	assert.Equal(t, menu.DefaultConfig(), cfg.MenuConfig())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestUserConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := UserConfigPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "textmenu", "config.yaml"), path)
}
