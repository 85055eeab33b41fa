package triage

import "math"

// Text quality tiers for the sampled pages.
const (
	QualityNone = "none"
	QualityPoor = "poor"
	QualityGood = "good"
	QualityBest = "best"
)

// Page classification labels. The half labels always come in pairs
// referencing the same page number.
const (
	PageTypeDocument   = "document"
	PageTypeFullPage   = "full_page"
	PageTypeTopHalf    = "top_half"
	PageTypeBottomHalf = "bottom_half"
	PageTypeLeftHalf   = "left_half"
	PageTypeRightHalf  = "right_half"
	PageTypeDropped    = "dropped"
)

// Classification thresholds. These are tuned constants; routing decisions
// downstream depend on their exact values, so change them only with
// corpus-level evidence.
const (
	// samplePageLimit is how many leading pages feed the quality sampler.
	samplePageLimit = 3

	// dropTextLength is the character count below which a page carries no
	// meaningful text.
	dropTextLength = 20

	// runTextLength is the character count above which a page joins a
	// document run when image coverage is low.
	runTextLength = 200

	// denseTextLength is the character count above which a page joins a
	// document run unconditionally.
	denseTextLength = 2000

	// langDetectMinLength gates language detection; shorter samples give
	// unreliable results.
	langDetectMinLength = 50

	// highCoverPercent marks a page as image-dominant.
	highCoverPercent = 25.0

	// boundsTolerance is how far an image must overlap the effective page
	// box, per axis, to count as on the page.
	boundsTolerance = 2.0

	// gapTolerance merges image intervals within this many points of each
	// other during gap detection.
	gapTolerance = 5.0

	// minGapRatio is the minimum center gap, as a fraction of the axis
	// length, required to split a page.
	minGapRatio = 0.01

	// minImageDimension excludes small decorative images from the interval
	// analysis.
	minImageDimension = 20.0
)

// PageVerdict is the classifier's output for one page. For split pages the
// type carries the leading half label; the assembler emits both halves.
type PageVerdict struct {
	PageNumber int
	Type       string
	ImageCover float64
}

// DocumentSegment is one carved piece of the page sequence: either a run of
// consecutive text-dominant pages or a single page (or half of one).
type DocumentSegment struct {
	Pages      []int   `json:"pages"`
	Type       string  `json:"type"`
	ImageCover float64 `json:"image_cover"`
}

// AnalysisResult is the externally visible artifact of a triage pass. Field
// names are part of the wire contract consumed by the downstream pipeline.
type AnalysisResult struct {
	IsMultiDocument bool              `json:"isMultiDocument"`
	DocumentCount   int               `json:"documentCount"`
	PageCount       int               `json:"pageCount"`
	HasTextLayer    bool              `json:"hasTextLayer"`
	TextQuality     string            `json:"textQuality"`
	Language        string            `json:"language"`
	Documents       []DocumentSegment `json:"documents"`
	Error           string            `json:"error,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
