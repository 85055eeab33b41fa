package main

import (
	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/config"
	"github.com/doctriage/doctriage/internal/home"
	"github.com/doctriage/doctriage/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the doctriage server",
	Long: `Start the doctriage HTTP server.

The server provides:
  - GET  /health              - Server health check
  - POST /api/analyze         - Analyze a PDF by server-side path
  - POST /api/analyze/upload  - Upload a PDF and analyze it

Examples:
  doctriage serve                    # Start on default port 8085
  doctriage serve --port 3000        # Start on custom port
  doctriage serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := buildLogger(cfg)

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		host := cfg.Server.Host
		port := cfg.Server.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		// Pick up config file edits while running
		cm.WatchConfig()

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8085, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
