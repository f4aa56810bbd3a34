// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	mediaFlags(playCmd)
}

// playCmd starts or resumes synchronized playback on both participants.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume synchronized playback on both participants",
	Long: `Start or resume synchronized playback on both participants.
A paused participant resumes in place; otherwise the saved selection is loaded from the top.`,
	Run: func(cmd *cobra.Command, args []string) {
		runIntent(mediaIntent(cmd, controller.CommandPlay))
	},
}
