package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/textmenu/internal/app"
	"github.com/zjrosen/textmenu/internal/clipboard"
	"github.com/zjrosen/textmenu/internal/config"
	"github.com/zjrosen/textmenu/internal/log"
	"github.com/zjrosen/textmenu/internal/menu"
	"github.com/zjrosen/textmenu/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the field.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:   "textmenu [file]",
	Short: "A terminal text field with a right-click context menu",
	Long: `A terminal text field with a right-click context menu offering
select all, cut, copy, paste, delete, date/time, right to left, clear and find.

The optional file is loaded as the initial text. It is never written back.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/textmenu/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to debug.log (also enabled by "+config.EnvDebug+")")
	rootCmd.Flags().String("verbosity", "",
		"menu verbosity: maximum, normal or minimum")
	rootCmd.Flags().Bool("find-error", false,
		"show a dialog when find has no match")
	rootCmd.Flags().Bool("rtl", false,
		"start with right-to-left text direction")
	rootCmd.Flags().String("clipboard", "",
		"clipboard backend: system, memory or none")

	// Bind flags to viper
	_ = viper.BindPFlag("menu.verbosity", rootCmd.Flags().Lookup("verbosity"))
	_ = viper.BindPFlag("menu.enable_find_error", rootCmd.Flags().Lookup("find-error"))
	_ = viper.BindPFlag("clipboard.backend", rootCmd.Flags().Lookup("clipboard"))
}

func initConfig() {
	v := viper.GetViper()
	setDefaults(v)
	resolveConfigFile(v, cfgFile)
	cfg, cfgErr = readConfig(v)
}

// setDefaults registers every key so unset flags and missing file entries
// fall back to config.Defaults.
func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("menu.verbosity", defaults.Menu.Verbosity)
	v.SetDefault("menu.enable_find_error", defaults.Menu.EnableFindError)
	v.SetDefault("menu.text_direction", defaults.Menu.TextDirection)
	v.SetDefault("menu.padding", defaults.Menu.Padding)
	v.SetDefault("menu.text_color", defaults.Menu.TextColor)
	v.SetDefault("clipboard.backend", defaults.Clipboard.Backend)
	v.SetDefault("history.limit", defaults.History.Limit)
	v.SetDefault("theme.muted", defaults.Theme.Muted)
	v.SetDefault("theme.error", defaults.Theme.Error)
	v.SetDefault("theme.success", defaults.Theme.Success)
}

// resolveConfigFile applies the lookup order:
// 1. --config
// 2. .textmenu/config.yaml (current directory)
// 3. ~/.config/textmenu/config.yaml (user config)
func resolveConfigFile(v *viper.Viper, explicit string) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		return
	}
	if local := config.LocalConfigPath(); fileExists(local) {
		v.SetConfigFile(local)
		return
	}
	if userPath, err := config.UserConfigPath(); err == nil {
		v.AddConfigPath(filepath.Dir(userPath))
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfig loads the file if there is one. A missing file is not an
// error; defaults apply.
func readConfig(v *viper.Viper) (config.Config, error) {
	var out config.Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return out, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&out); err != nil {
		return out, fmt.Errorf("decoding config: %w", err)
	}
	return out, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func debugEnabled() bool {
	return debugFlag || os.Getenv(config.EnvDebug) != ""
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	forceRTL, _ := cmd.Flags().GetBool("rtl")
	if forceRTL {
		cfg.Menu.TextDirection = menu.RTL.String()
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logging if debug mode enabled (via flag or env var)
	debug := debugEnabled()
	if debug {
		logPath := os.Getenv(config.EnvLogFile)
		if logPath == "" {
			logPath = config.DefaultLogFile
		}
		cleanup, err := log.InitWithTeaLog(logPath, "textmenu")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "textmenu starting", "version", version, "logPath", logPath)
	}

	initial, err := readInitialText(args)
	if err != nil {
		return err
	}

	clip, err := clipboard.New(cfg.Clipboard.Backend)
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	if err := styles.ApplyTheme(cfg.StyleTheme()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	// Store the config file path for saving the text direction
	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		// No config file was loaded; the first save creates the user config.
		configFilePath, _ = config.UserConfigPath()
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Config:      cfg,
		ConfigPath:  configFilePath,
		Clipboard:   clip,
		InitialText: initial,
		DebugMode:   debug,
		ForceRTL:    forceRTL,
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	watchConfig(viper.GetViper(), p.Send)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// readInitialText returns the content of the optional file argument.
func readInitialText(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// watchConfig forwards every change of the loaded config file to send.
// It does nothing when no file was loaded.
func watchConfig(v *viper.Viper, send func(tea.Msg)) {
	if v.ConfigFileUsed() == "" || !fileExists(v.ConfigFileUsed()) {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		var next config.Config
		if err := v.Unmarshal(&next); err != nil {
			log.ErrorErr(log.CatConfig, "config reload decode failed", err, "path", e.Name)
			return
		}
		log.Debug(log.CatConfig, "config file changed", "path", e.Name, "op", e.Op.String())
		send(app.ConfigReloadedMsg{Config: next})
	})
	v.WatchConfig()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
