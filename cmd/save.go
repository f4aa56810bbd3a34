// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/duet-cli/duet/controller"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
	mediaFlags(saveCmd)
}

// saveCmd persists the media selection for later playback commands.
// Missing paths are prompted for interactively.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the media paths used by subsequent playback commands",
	Run: func(cmd *cobra.Command, args []string) {
		masterFile := lo.Must(cmd.Flags().GetString("master"))
		slaveFile := lo.Must(cmd.Flags().GetString("slave"))

		if masterFile == "" {
			masterFile = promptPath("Media path for the master participant:")
		}
		if slaveFile == "" {
			slaveFile = promptPath("Media path for the slave participant:")
		}

		runIntent(controller.Intent{
			Command:    controller.CommandSave,
			MasterFile: masterFile,
			SlaveFile:  slaveFile,
		})
	},
}

func promptPath(message string) string {
	input := survey.Input{Message: message}

	var response string
	handleErr(survey.AskOne(&input, &response))

	return response
}
