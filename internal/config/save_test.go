package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textmenu/internal/menu"
)

func loadWithViper(t *testing.T, path string) Config {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestSaveTextDirection_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveTextDirection(path, menu.RTL))

	cfg := loadWithViper(t, path)
	assert.Equal(t, "rtl", cfg.Menu.TextDirection)
}

func TestSaveTextDirection_PreservesCommentsAndKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveTextDirection(path, menu.RTL))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Which items the right-click menu shows:")
	assert.Contains(t, content, "text_direction: rtl")
	assert.NotContains(t, content, "text_direction: ltr")

	cfg := loadWithViper(t, path)
	expected := Defaults()
	expected.Menu.TextDirection = "rtl"
	assert.Equal(t, expected, cfg)
}

func TestSaveTextDirection_AddsMissingMenuSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  limit: 5\n"), 0o600))

	require.NoError(t, SaveTextDirection(path, menu.RTL))

	cfg := loadWithViper(t, path)
	assert.Equal(t, "rtl", cfg.Menu.TextDirection)
	assert.Equal(t, 5, cfg.History.Limit)
}

func TestSaveTextDirection_Toggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveTextDirection(path, menu.RTL))
	require.NoError(t, SaveTextDirection(path, menu.LTR))

	assert.Equal(t, "ltr", loadWithViper(t, path).Menu.TextDirection)
}

func TestSaveTextDirection_RejectsNonMappingMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu: minimal\n"), 0o600))

	err := SaveTextDirection(path, menu.RTL)

	require.ErrorContains(t, err, "not a mapping")
}

func TestSaveTextDirection_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu: [unclosed\n"), 0o600))

	err := SaveTextDirection(path, menu.RTL)

	require.ErrorContains(t, err, "parsing config")
}
