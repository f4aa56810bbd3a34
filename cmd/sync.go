// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
	mediaFlags(syncCmd)
}

// syncCmd measures and corrects playback drift between the participants.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Measure playback drift and re-align the lagging participant",
	Long: `Measure playback drift between the participants and re-align the lagging one.
An unreachable or stalled participant is first recovered by reloading its saved media.`,
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandSync))
	},
}
