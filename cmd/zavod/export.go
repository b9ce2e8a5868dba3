// Export command: writes the full snapshot as JSON to stdout or, with
// --out, atomically to a file.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/internal/sqlite"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all items as a JSON snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		snapshot, err := store.Export()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if flagExportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := writeFileAtomic(flagExportOut, data); err != nil {
			return err
		}
		fmt.Printf("exported %d incidents and %d instructions to %s\n",
			len(snapshot.Incidents), len(snapshot.Instructions), flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default: stdout)")
}

// writeFileAtomic writes data using the temp-file, rename pattern so a
// failed export never leaves a truncated snapshot behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}
