// Package pdf provides the extraction backend for the triage analyzer:
// page geometry (media/crop boxes), positioned characters, and embedded
// image placements, all in a top-down coordinate system.
package pdf

// Rect is an axis-aligned bounding box in top-down page coordinates:
// (X0, Top) is the upper-left corner, (X1, Bottom) the lower-right.
type Rect struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Area returns the box area. Degenerate boxes yield zero or negative values;
// callers are expected to guard.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Intersects reports whether the two boxes overlap (open intersection).
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Top < o.Bottom && r.Bottom > o.Top
}

// IntersectsInset reports whether r overlaps o by more than tol points on
// each axis. Used to discard objects that only graze the page bounds.
func (r Rect) IntersectsInset(o Rect, tol float64) bool {
	return r.X1 > o.X0+tol && r.X0 < o.X1-tol &&
		r.Bottom > o.Top+tol && r.Top < o.Bottom-tol
}

// Char is a positioned run of extracted text. Backends may emit single
// characters or short fragments; Text carries the literal content either way.
type Char struct {
	Rect
	Text string
}

// Image is the placement box of an embedded raster image on a page.
type Image struct {
	Rect
}

// Page is the materialized geometry of a single page. It is read-only to
// consumers; the analyzer never mutates backend output.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// MediaBox is the page's media box.
	MediaBox Rect

	// CropBox is the page's crop box, or nil when absent or identical to
	// the media box.
	CropBox *Rect

	// Chars are the page's positioned text runs in extraction order.
	Chars []Char

	// Images are the page's image placements in content-stream order.
	Images []Image

	// Text is the assembled plain text of the page. May be empty.
	Text string
}

// EffectiveBox returns the crop box when it is present and differs from the
// media box, else the media box. This is the true content boundary.
func (p *Page) EffectiveBox() Rect {
	if p.CropBox != nil {
		return *p.CropBox
	}
	return p.MediaBox
}

// Document is the extraction backend contract consumed by the analyzer.
type Document interface {
	// PageCount returns the total number of pages.
	PageCount() int

	// Page returns the materialized geometry for the given 1-based page
	// number.
	Page(n int) (*Page, error)

	// Close releases resources held by the backend.
	Close() error
}
