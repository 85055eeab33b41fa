package main

import (
	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running doctriage server via HTTP.

These commands require a running server (doctriage serve).
Use --server to specify a custom server URL.

Examples:
  doctriage api health                  # Check server health
  doctriage api analyze /srv/scan.pdf   # Analyze a PDF on the server
  doctriage api upload ./scan.pdf       # Upload and analyze a PDF`,
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8085", "Server URL",
	)

	for _, ep := range endpoints.All() {
		if cmd := ep.Command(getServerURL); cmd != nil {
			apiCmd.AddCommand(cmd)
		}
	}

	rootCmd.AddCommand(apiCmd)
}
