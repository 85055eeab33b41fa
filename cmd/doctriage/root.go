package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/api"
	"github.com/doctriage/doctriage/internal/config"
	"github.com/doctriage/doctriage/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "doctriage",
	Short: "PDF document triage: text quality, language, and multi-document detection",
	Long: `doctriage inspects PDF files and decides how the rest of a document
pipeline should treat them: whether the file has a usable text layer,
what language it is in, and whether it bundles several logical
documents (multiple scans on one page, stapled batches, etc.).

The analysis covers:
  - Text-quality sampling over the leading pages
  - Per-page classification (text-dominant, full-page scan, split scans)
  - Multi-document segmentation with top/bottom and left/right splits`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.doctriage/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "doctriage home directory (default: ~/.doctriage)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// buildLogger constructs the process logger from config.
func buildLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Log.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
