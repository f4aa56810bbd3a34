// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stopCmd)
	mediaFlags(stopCmd)
}

// stopCmd halts playback on both participants.
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Halt playback on both participants",
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandStop))
	},
}
