// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wakeCmd)
	mediaFlags(wakeCmd)
}

// wakeCmd performs a full cold bring-up of both participants.
var wakeCmd = &cobra.Command{
	Use:   "wake",
	Short: "Load the selection and bring both participants up from a cold start",
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandWake))
	},
}
