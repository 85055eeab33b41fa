// Package triage implements the document-triage pass: text-quality sampling,
// per-page classification, and multi-document segmentation. Given a PDF it
// decides whether the file holds more than one logical sub-document, how to
// carve the page sequence into typed segments, and whether each segment is
// suitable for native text extraction or must go to an OCR pipeline.
package triage

import (
	"context"
	"log/slog"

	"github.com/doctriage/doctriage/internal/langdetect"
	"github.com/doctriage/doctriage/internal/pdf"
)

// Analyzer runs triage passes. It holds no per-document state; one Analyzer
// is safe to share across concurrent calls on different files.
type Analyzer struct {
	logger *slog.Logger

	// Seams for tests; production wiring is set by New.
	open     func(path string) (pdf.Document, error)
	precheck func(path string) (int, error)
	detect   func(text string) (string, error)

	detectLanguage bool
}

// New returns an Analyzer wired to the PDF backend and language detector.
// detectLanguage disables the (expensive) language model when false.
func New(logger *slog.Logger, detectLanguage bool) *Analyzer {
	return &Analyzer{
		logger:         logger,
		open:           pdf.Open,
		precheck:       pdf.Validate,
		detect:         langdetect.Detect,
		detectLanguage: detectLanguage,
	}
}

// Analyze runs the full triage pass over the PDF at path. It never returns
// an error across this boundary: backend failures come back as a result with
// the Error field set, and per-page failures degrade to dropped pages.
func (a *Analyzer) Analyze(ctx context.Context, path string) *AnalysisResult {
	result := &AnalysisResult{
		TextQuality: QualityNone,
		Language:    "unknown",
	}

	if _, err := a.precheck(path); err != nil {
		a.logger.Warn("pdf failed structural check", "path", path, "error", err)
		result.Error = err.Error()
		return result
	}

	doc, err := a.open(path)
	if err != nil {
		a.logger.Warn("failed to open pdf", "path", path, "error", err)
		result.Error = err.Error()
		return result
	}
	defer doc.Close()

	result.PageCount = doc.PageCount()

	s := a.sample(doc)
	result.TextQuality = s.TextQuality
	result.HasTextLayer = s.HasTextLayer
	result.Language = s.Language

	var asm assembler
	dropped := 0
	for n := 1; n <= result.PageCount; n++ {
		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			return result
		}

		p, err := doc.Page(n)
		if err != nil {
			// A page that cannot be measured is treated as sparse,
			// not as a failure of the whole document.
			a.logger.Debug("page unreadable, dropping", "path", path, "page", n, "error", err)
			asm.add(PageVerdict{PageNumber: n, Type: PageTypeDropped})
			dropped++
			continue
		}

		v := classifyPage(p)
		if v.Type == PageTypeDropped {
			dropped++
		}
		asm.add(v)
	}

	result.Documents = asm.finish()
	result.DocumentCount = len(result.Documents)
	result.IsMultiDocument = result.DocumentCount > 1

	a.logger.Info("triage complete",
		"path", path,
		"pages", result.PageCount,
		"segments", result.DocumentCount,
		"dropped", dropped,
		"quality", result.TextQuality,
		"language", result.Language,
	)
	return result
}
