// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(speedCmd)
	mediaFlags(speedCmd)

	speedCmd.AddCommand(speedResetCmd)
	mediaFlags(speedResetCmd)
}

// speedCmd applies the same playback rate to both participants.
var speedCmd = &cobra.Command{
	Use:   "speed [rate]",
	Short: "Apply the same playback rate to both participants",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := mediaIntent(cmd, controller.CommandSpeed)
		in.Speed = args[0]
		runIntent(in)
	},
}

// speedResetCmd restores normal playback rate on both participants.
var speedResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore normal playback rate on both participants",
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandSpeedReset))
	},
}
