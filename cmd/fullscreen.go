// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fullscreenCmd)
	mediaFlags(fullscreenCmd)
}

// fullscreenCmd enables fullscreen on any participant not already in it.
var fullscreenCmd = &cobra.Command{
	Use:   "fullscreen",
	Short: "Enable fullscreen on any participant not already in it",
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandFullscreen))
	},
}
