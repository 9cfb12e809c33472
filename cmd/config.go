package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/config"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

// configTargetPath returns the config file the config subcommands operate
// on: the --config override when given, otherwise the user config location.
func configTargetPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "registrar", "config.yaml")
}

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configTargetPath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Wrote "+path))
		return nil
	},
}

var configSetDataDirCmd = &cobra.Command{
	Use:   "config:set-data-dir <dir>",
	Short: "Point the config at a different data directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configTargetPath()
		if err := config.SaveDataDir(path, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Set data_dir to %s in %s", args[0], path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configSetDataDirCmd)
}
