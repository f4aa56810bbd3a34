// Package cmd implements the command-line interface for duet.
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/duet-cli/duet/auth"
	"github.com/duet-cli/duet/icon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authClearCmd)
}

// authCmd manages the shared remote-control password.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the shared remote-control password in the system keyring",
}

// authSetCmd stores the shared players password in the system keyring.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the shared players password in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		prompt := survey.Password{Message: "Shared players password:"}

		var password string
		handleErr(survey.AskOne(&prompt, &password))

		if password == "" {
			handleErr(errors.New("password must not be empty"))
		}

		handleErr(auth.SetPassword(password))
		fmt.Printf("%s players password stored in the system keyring\n", icon.Get(icon.Success))
	},
}

// authClearCmd removes the shared players password from the system keyring.
var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the shared players password from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeletePassword())
		fmt.Printf("%s players password removed from the system keyring\n", icon.Get(icon.Success))
	},
}
