package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textmenu/internal/app"
	"github.com/zjrosen/textmenu/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	resolveConfigFile(v, path)
	return v
}

func TestReadConfig_MissingFileUsesDefaults(t *testing.T) {
	v := newViper(filepath.Join(t.TempDir(), "missing.yaml"))

	got, err := readConfig(v)

	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), got)
}

func TestReadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `menu:
  verbosity: normal
  enable_find_error: true
  padding: [1, 2, 1, 2]
clipboard:
  backend: memory
history:
  limit: 50
`)

	got, err := readConfig(newViper(path))

	require.NoError(t, err)
	assert.Equal(t, "normal", got.Menu.Verbosity)
	assert.True(t, got.Menu.EnableFindError)
	assert.Equal(t, "ltr", got.Menu.TextDirection, "unset keys keep defaults")
	assert.Equal(t, []int{1, 2, 1, 2}, got.Menu.Padding)
	assert.Equal(t, "memory", got.Clipboard.Backend)
	assert.Equal(t, 50, got.History.Limit)
}

func TestReadConfig_Template(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	got, err := readConfig(newViper(path))

	require.NoError(t, err)
	require.NoError(t, config.Validate(got))
	assert.Equal(t, config.Defaults(), got)
}

func TestReadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "menu: [unclosed\n")

	_, err := readConfig(newViper(path))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestResolveConfigFile_Explicit(t *testing.T) {
	v := newViper("/tmp/explicit.yaml")

	assert.Equal(t, "/tmp/explicit.yaml", v.ConfigFileUsed())
}

func TestResolveConfigFile_LocalBeforeUser(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, config.LocalConfigPath()), "menu:\n  verbosity: minimum\n")

	v := newViper("")
	got, err := readConfig(v)

	require.NoError(t, err)
	assert.Equal(t, config.LocalConfigPath(), v.ConfigFileUsed())
	assert.Equal(t, "minimum", got.Menu.Verbosity)
}

func TestReadInitialText(t *testing.T) {
	text, err := readInitialText(nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	path := filepath.Join(t.TempDir(), "note.txt")
	writeFile(t, path, "hello\nworld")
	text, err = readInitialText([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)

	_, err = readInitialText([]string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestDebugEnabled_Env(t *testing.T) {
	t.Setenv(config.EnvDebug, "")
	assert.False(t, debugEnabled())

	t.Setenv(config.EnvDebug, "1")
	assert.True(t, debugEnabled())
}

func TestWatchConfig_SendsReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))
	v := newViper(path)
	_, err := readConfig(v)
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 16)
	watchConfig(v, func(msg tea.Msg) { msgs <- msg })

	writeFile(t, path, "menu:\n  verbosity: minimum\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgs:
			reload, ok := msg.(app.ConfigReloadedMsg)
			require.True(t, ok, "expected ConfigReloadedMsg, got %T", msg)
			if reload.Config.Menu.Verbosity == "minimum" {
				return
			}
		case <-deadline:
			t.Fatal("no reload message for the changed file")
		}
	}
}

func TestWatchConfig_NoFileIsNoop(t *testing.T) {
	v := newViper(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NotPanics(t, func() {
		watchConfig(v, func(tea.Msg) { t.Error("unexpected message") })
	})
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigInit(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		configInitForce = false
		configInitLocal = false
	})
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, err := executeRoot(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfigTemplate(), string(data))

	_, err = executeRoot(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeRoot(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { SetVersion("dev") })

	SetVersion("1.2.3 (commit: abc, built: today)")

	assert.Equal(t, "1.2.3 (commit: abc, built: today)", rootCmd.Version)
	assert.Equal(t, "1.2.3 (commit: abc, built: today)", version)
}
