package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/api"
	"github.com/doctriage/doctriage/internal/svcctx"
)

// AnalyzeRequest is the body for POST /api/analyze.
type AnalyzeRequest struct {
	Path string `json:"path"`
}

// AnalyzeEndpoint handles POST /api/analyze: triage a PDF already on the
// server's filesystem.
type AnalyzeEndpoint struct{}

var _ api.Endpoint = (*AnalyzeEndpoint)(nil)

func (e *AnalyzeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/analyze", e.handler
}

func (e *AnalyzeEndpoint) RequiresInit() bool { return true }

func (e *AnalyzeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	if _, err := os.Stat(req.Path); err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("file not accessible: %v", err))
		return
	}

	analyzer := svcctx.AnalyzerFrom(r.Context())
	if analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "analyzer not initialized")
		return
	}

	// Analyze never fails across this boundary; backend problems land in
	// the result's error field and still return 200.
	result := analyzer.Analyze(r.Context(), req.Path)
	writeJSON(w, http.StatusOK, result)
}

func (e *AnalyzeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a PDF on the server's filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var result json.RawMessage
			req := AnalyzeRequest{Path: strings.TrimSpace(args[0])}
			if err := client.Post(cmd.Context(), "/api/analyze", req, &result); err != nil {
				return err
			}
			var out any
			if err := json.Unmarshal(result, &out); err != nil {
				return err
			}
			return api.Output(out)
		},
	}
}
