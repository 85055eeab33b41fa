package endpoints

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/doctriage/doctriage/internal/api"
	"github.com/doctriage/doctriage/internal/svcctx"
	"github.com/doctriage/doctriage/internal/triage"
)

// UploadResponse is the response for POST /api/analyze/upload.
type UploadResponse struct {
	ID     string                 `json:"id"`
	Result *triage.AnalysisResult `json:"result"`
}

// UploadEndpoint handles POST /api/analyze/upload with a multipart PDF
// upload. The file is stored in the home inbox under a fresh id and the
// analysis result is persisted alongside it in the results directory.
type UploadEndpoint struct{}

var _ api.Endpoint = (*UploadEndpoint)(nil)

func (e *UploadEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/analyze/upload", e.handler
}

func (e *UploadEndpoint) RequiresInit() bool { return true }

func (e *UploadEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 100 << 20 // 100MB
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return
	}

	homeDir := svcctx.HomeFrom(r.Context())
	if homeDir == nil {
		writeError(w, http.StatusServiceUnavailable, "home directory not initialized")
		return
	}
	analyzer := svcctx.AnalyzerFrom(r.Context())
	if analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "analyzer not initialized")
		return
	}
	logger := svcctx.LoggerFrom(r.Context())

	id := uuid.New().String()
	destPath := homeDir.InboxFilePath(id)

	dst, err := os.Create(destPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(destPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	dst.Close()

	result := analyzer.Analyze(r.Context(), destPath)

	// Persist the result next to the inbox file. Failure to persist is
	// logged but does not fail the request; the caller still gets the
	// analysis back.
	if data, err := json.MarshalIndent(result, "", "  "); err == nil {
		if err := os.WriteFile(homeDir.ResultPath(id), data, 0o644); err != nil && logger != nil {
			logger.Error("failed to persist analysis result", "id", id, "error", err)
		}
	}

	if logger != nil {
		logger.Info("upload analyzed", "id", id, "filename", header.Filename,
			"pages", result.PageCount, "segments", result.DocumentCount)
	}

	writeJSON(w, http.StatusOK, UploadResponse{ID: id, Result: result})
}

func (e *UploadEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a PDF to the server and analyze it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp UploadResponse
			if err := client.PostFile(cmd.Context(), "/api/analyze/upload", "file", args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
