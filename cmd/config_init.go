package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/textmenu/internal/config"
)

var (
	configInitForce bool
	configInitLocal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the commented default configuration",
	Long: `Write the commented default configuration file.

The file goes to --config when given, to ./.textmenu/config.yaml with --local,
and to ~/.config/textmenu/config.yaml otherwise.

Examples:
  textmenu config init
  textmenu config init --local
  textmenu config init --config /tmp/textmenu.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configInitCmd.Flags().BoolVar(&configInitLocal, "local", false, "write ./.textmenu/config.yaml")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configInitPath()
	if err != nil {
		return err
	}
	if fileExists(path) && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func configInitPath() (string, error) {
	switch {
	case cfgFile != "":
		return cfgFile, nil
	case configInitLocal:
		return config.LocalConfigPath(), nil
	default:
		return config.UserConfigPath()
	}
}
