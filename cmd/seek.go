// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/controller"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seekCmd)
	mediaFlags(seekCmd)

	rootCmd.AddCommand(skipCmd)
	mediaFlags(skipCmd)
	skipCmd.Flags().BoolP("back", "b", false, "Skip backwards instead of forwards")
}

// seekCmd moves both participants to the same absolute position.
var seekCmd = &cobra.Command{
	Use:   "seek [seconds]",
	Short: "Move both participants to the same absolute position in seconds",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := mediaIntent(cmd, controller.CommandSeek)
		in.SeekValue = args[0]
		runIntent(in)
	},
}

// skipCmd moves each participant by the configured step, relative to its own position.
var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip both participants by the configured step, each relative to its own position",
	Run: func(cmd *cobra.Command, args []string) {
		command := controller.CommandSkipForward
		if lo.Must(cmd.Flags().GetBool("back")) {
			command = controller.CommandSkipBack
		}

		runIntent(mediaIntent(cmd, command))
	},
}
