// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pauseCmd)
	mediaFlags(pauseCmd)
}

// pauseCmd aligns both participants at the leading position and pauses them.
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Align both participants at the leading position and pause them",
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandPause))
	},
}
