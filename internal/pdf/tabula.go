package pdf

import (
	"fmt"
	"sync"

	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/text"
)

// tabulaDocument implements Document on top of the tabula PDF reader.
type tabulaDocument struct {
	r         *reader.Reader
	pageCount int

	mu    sync.Mutex
	cache map[int]*Page
}

// Open opens a PDF file and returns a Document backed by tabula.
func Open(path string) (Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	count, err := r.PageCount()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	return &tabulaDocument{
		r:         r,
		pageCount: count,
		cache:     make(map[int]*Page),
	}, nil
}

func (d *tabulaDocument) PageCount() int { return d.pageCount }

func (d *tabulaDocument) Close() error { return d.r.Close() }

// Page materializes the geometry of the given 1-based page. Pages are cached
// because the analyzer visits the sample pages twice.
func (d *tabulaDocument) Page(n int) (*Page, error) {
	if n < 1 || n > d.pageCount {
		return nil, fmt.Errorf("page %d out of range (1-%d)", n, d.pageCount)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.cache[n]; ok {
		return p, nil
	}

	pg, err := d.r.GetPage(n - 1)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}

	mb, err := pg.MediaBox()
	if err != nil || len(mb) != 4 {
		return nil, fmt.Errorf("page %d: media box: %w", n, err)
	}

	// PDF user space is bottom-up; flip around the media box top edge to
	// get top-down coordinates.
	flipY := mb[3]
	mediaBox := rectFromPDF(mb[0], mb[1], mb[2], mb[3], flipY)

	var cropBox *Rect
	if cb, err := pg.CropBox(); err == nil && len(cb) == 4 && !sameBox(cb, mb) {
		r := rectFromPDF(cb[0], cb[1], cb[2], cb[3], flipY)
		cropBox = &r
	}

	// A page whose text cannot be extracted is still usable for image
	// analysis; degrade to no characters.
	fragments, err := d.r.ExtractTextFragments(pg)
	if err != nil {
		fragments = nil
	}

	chars := make([]Char, 0, len(fragments))
	for _, f := range fragments {
		chars = append(chars, Char{
			Rect: Rect{
				X0:     f.X,
				Top:    flipY - (f.Y + f.Height),
				X1:     f.X + f.Width,
				Bottom: flipY - f.Y,
			},
			Text: f.Text,
		})
	}

	// Image placement failures likewise degrade to an image-free page.
	images, err := d.imagePlacements(pg, flipY)
	if err != nil {
		images = nil
	}

	p := &Page{
		Number:   n,
		MediaBox: mediaBox,
		CropBox:  cropBox,
		Chars:    chars,
		Images:   images,
		Text:     assembleText(fragments),
	}
	d.cache[n] = p
	return p, nil
}

// rectFromPDF converts a PDF-space box (x0, y0, x1, y1, bottom-up) into a
// top-down Rect relative to flipY.
func rectFromPDF(x0, y0, x1, y1, flipY float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Top: flipY - y1, X1: x1, Bottom: flipY - y0}
}

func sameBox(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// assembleText joins text fragments into plain page text, inserting spaces
// within a line and newlines between lines. Fragment order follows the
// content stream; sorting by position is handled upstream by tabula for the
// richer extraction paths, which the triage heuristics do not need.
func assembleText(fragments []text.TextFragment) string {
	if len(fragments) == 0 {
		return ""
	}

	var b []byte
	var lastY, lastEndX float64
	for i, f := range fragments {
		if i > 0 {
			yDiff := f.Y - lastY
			if yDiff < 0 {
				yDiff = -yDiff
			}
			switch {
			case yDiff > f.Height*0.5:
				b = append(b, '\n')
			case f.X-lastEndX > f.FontSize*0.3:
				b = append(b, ' ')
			}
		}
		b = append(b, f.Text...)
		lastY = f.Y
		lastEndX = f.X + f.Width
	}
	return string(b)
}
