// Import command: reads a snapshot file and creates new items from it.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/internal/sqlite"
	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Import items from a JSON snapshot",
	Long: `Import items from a JSON snapshot produced by export.

Import is strictly additive: every snapshot entry creates a new item and
snapshot ids are ignored. Items imported before a failure stay committed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var snapshot types.Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return fmt.Errorf("parsing snapshot: %w", err)
		}

		store, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		counts, err := store.Import(snapshot)
		if err != nil {
			return fmt.Errorf("imported %d incidents and %d instructions before failing: %w",
				counts.Incidents, counts.Instructions, err)
		}
		fmt.Printf("imported %d incidents and %d instructions\n",
			counts.Incidents, counts.Instructions)
		return nil
	},
}
