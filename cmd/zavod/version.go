// Version command for the zavod CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/pkg/zavod"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the zavod version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("zavod", zavod.Version)
	},
}
