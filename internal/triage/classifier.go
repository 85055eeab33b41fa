package triage

import (
	"strings"
	"unicode/utf8"

	"github.com/doctriage/doctriage/internal/pdf"
)

// classifyPage assigns a triage type to a single page from its text density
// and image layout. The ordering of the checks matters: sparse pages drop
// before anything else, dense text wins over images, and vertical splits are
// tried before horizontal ones.
func classifyPage(p *pdf.Page) PageVerdict {
	eff := p.EffectiveBox()

	pageArea := p.MediaBox.Area()
	if pageArea < 1.0 {
		pageArea = 1.0
	}

	pLen := textLength(p.Text)

	var totalImgArea float64
	var yIntervals, xIntervals []interval
	relevantImages := 0

	for _, img := range p.Images {
		// Images outside the crop zone are invisible to the reader.
		if !img.IntersectsInset(eff, boundsTolerance) {
			continue
		}
		totalImgArea += img.Area()

		if img.Width() < minImageDimension || img.Height() < minImageDimension {
			continue
		}
		relevantImages++
		yIntervals = append(yIntervals, interval{start: img.Top, end: img.Bottom})
		xIntervals = append(xIntervals, interval{start: img.X0, end: img.X1})
	}

	cover := totalImgArea / pageArea * 100
	if cover > 100 {
		cover = 100
	}
	if cover < 0 {
		cover = 0
	}
	cover = round2(cover)

	v := PageVerdict{PageNumber: p.Number, ImageCover: cover}
	switch {
	case pLen < dropTextLength && cover < highCoverPercent:
		v.Type = PageTypeDropped
	case pLen > denseTextLength || (pLen > runTextLength && cover < highCoverPercent):
		v.Type = PageTypeDocument
	case relevantImages < 2:
		v.Type = PageTypeFullPage
	case hasCenterGap(yIntervals, eff.Height()):
		v.Type = PageTypeTopHalf
	case hasCenterGap(xIntervals, eff.Width()):
		v.Type = PageTypeLeftHalf
	default:
		v.Type = PageTypeFullPage
	}
	return v
}

// textLength counts the runes of the trimmed text. Rune count, not byte
// count: the thresholds were tuned on character counts and multi-byte
// scripts would otherwise inflate.
func textLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
