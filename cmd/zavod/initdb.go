// Init command: creates the data directory, database schema, and uploads
// directory without starting the server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/internal/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the knowledge-base storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		if err := store.Close(); err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Uploads(), 0755); err != nil {
			return err
		}
		fmt.Printf("initialized storage in %s\n", cfg.DataDir)
		return nil
	},
}
