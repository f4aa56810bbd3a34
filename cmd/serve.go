// Package cmd implements the command-line interface for duet.
package cmd

import (
	"github.com/duet-cli/duet/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("schema", false, "Print the JSON schema of the control request body and exit")
}

// serveCmd exposes the control endpoint over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the control endpoint over HTTP",
	Long: `Serve the control endpoint over HTTP.
POST /control accepts one JSON control request and answers with its outcome;
GET /health and GET /schema expose liveness and the request schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			cmd.Println(string(server.Schema()))
			return
		}

		handleErr(server.Run(newController()))
	},
}
