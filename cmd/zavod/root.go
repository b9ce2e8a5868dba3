// Root command for the zavod CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
	"github.com/ShalunBdk/ZavodHelper/pkg/zavod"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// cfg holds the configuration loaded by PersistentPreRunE so all
// subcommands can use it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:     "zavod",
	Short:   "Zavod is a knowledge base for manufacturing incidents and instructions",
	Version: zavod.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		if flagDataDir != "" {
			loaded.DataDir = flagDataDir
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.zavod)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.zavod-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
