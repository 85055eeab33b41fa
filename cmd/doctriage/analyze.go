package main

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/api"
	"github.com/doctriage/doctriage/internal/config"
	"github.com/doctriage/doctriage/internal/triage"
)

var analyzeWorkers int

// FileResult pairs an input path with its analysis for batch output.
type FileResult struct {
	Path   string                 `json:"path" yaml:"path"`
	Result *triage.AnalysisResult `json:"result" yaml:"result"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path> [path...]",
	Short: "Analyze one or more PDF files locally",
	Long: `Analyze PDF files without a running server.

A single path prints the bare analysis result. Multiple paths are
analyzed concurrently (bounded by analyze.max_workers) and printed as a
list in input order. Failures never abort the batch; they appear in
the per-file result's error field.

Examples:
  doctriage analyze scan.pdf
  doctriage analyze -o yaml inbox/*.pdf
  doctriage analyze --workers 8 batch/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := buildLogger(cfg)

		workers := cfg.Analyze.MaxWorkers
		if analyzeWorkers > 0 {
			workers = analyzeWorkers
		}
		if workers < 1 {
			workers = 1
		}

		analyzer := triage.New(logger, cfg.Analyze.LanguageDetection)

		results := make([]FileResult, len(args))
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup

		for i, path := range args {
			wg.Add(1)
			go func(i int, path string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				results[i] = FileResult{
					Path:   path,
					Result: analyzer.Analyze(cmd.Context(), path),
				}
			}(i, path)
		}
		wg.Wait()

		if len(results) == 1 {
			return api.Output(results[0].Result)
		}
		return api.Output(results)
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0,
		"max concurrent analyses (default: analyze.max_workers from config)")

	rootCmd.AddCommand(analyzeCmd)
}
