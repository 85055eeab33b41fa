package triage

import (
	"strings"
	"unicode/utf8"

	"github.com/doctriage/doctriage/internal/pdf"
)

// sampleResult carries the document-level quality fields derived from the
// leading pages. These describe the file as a whole and are independent of
// per-page classification.
type sampleResult struct {
	TextQuality  string
	HasTextLayer bool
	Language     string
}

// sample estimates text quality and language from the first few pages. It
// never fails; unreadable pages simply contribute nothing and the defaults
// are "none" and "unknown".
func (a *Analyzer) sample(doc pdf.Document) sampleResult {
	out := sampleResult{TextQuality: QualityNone, Language: "unknown"}

	n := doc.PageCount()
	if n > samplePageLimit {
		n = samplePageLimit
	}

	var parts []string
	for i := 1; i <= n; i++ {
		p, err := doc.Page(i)
		if err != nil {
			continue
		}
		parts = append(parts, sampleText(p))
	}

	allText := strings.TrimSpace(strings.Join(parts, "\n"))
	length := utf8.RuneCountInString(allText)

	switch {
	case length > denseTextLength:
		out.TextQuality = QualityBest
		out.HasTextLayer = true
	case length > runTextLength:
		out.TextQuality = QualityGood
		out.HasTextLayer = true
	case length >= dropTextLength:
		out.TextQuality = QualityPoor
	default:
		out.TextQuality = QualityNone
	}

	if a.detectLanguage && length > langDetectMinLength {
		if code, err := a.detect(allText); err == nil {
			out.Language = code
		}
	}
	return out
}

// sampleText returns the page text that does not overlap any embedded image.
// Text painted over a scan is usually an OCR artifact or watermark and says
// nothing about the native text layer. Pages without images use the cheaper
// assembled extraction.
func sampleText(p *pdf.Page) string {
	if len(p.Images) == 0 {
		return p.Text
	}

	var b strings.Builder
	for _, c := range p.Chars {
		overlapping := false
		for _, img := range p.Images {
			if c.Intersects(img.Rect) {
				overlapping = true
				break
			}
		}
		if !overlapping {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}
