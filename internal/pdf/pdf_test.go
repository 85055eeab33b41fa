package pdf

import (
	"testing"

	"github.com/tsawler/tabula/text"
)

func TestRectGeometry(t *testing.T) {
	r := Rect{X0: 10, Top: 20, X1: 110, Bottom: 70}

	if got := r.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := r.Height(); got != 50 {
		t.Errorf("Height() = %v, want 50", got)
	}
	if got := r.Area(); got != 5000 {
		t.Errorf("Area() = %v, want 5000", got)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X0: 0, Top: 0, X1: 100, Bottom: 100}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"fully inside", Rect{X0: 10, Top: 10, X1: 90, Bottom: 90}, true},
		{"partial overlap", Rect{X0: 50, Top: 50, X1: 150, Bottom: 150}, true},
		{"edge touch only", Rect{X0: 100, Top: 0, X1: 200, Bottom: 100}, false},
		{"disjoint", Rect{X0: 200, Top: 200, X1: 300, Bottom: 300}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectsInset(t *testing.T) {
	page := Rect{X0: 0, Top: 0, X1: 600, Bottom: 800}

	tests := []struct {
		name string
		img  Rect
		tol  float64
		want bool
	}{
		{"well inside", Rect{X0: 100, Top: 100, X1: 500, Bottom: 700}, 2, true},
		{"grazes left edge", Rect{X0: -10, Top: 100, X1: 1, Bottom: 700}, 2, false},
		{"barely past tolerance", Rect{X0: -10, Top: 100, X1: 3, Bottom: 700}, 2, true},
		{"grazes bottom edge", Rect{X0: 100, Top: 799, X1: 500, Bottom: 900}, 2, false},
		{"entirely outside", Rect{X0: 700, Top: 100, X1: 800, Bottom: 700}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.img.IntersectsInset(page, tt.tol); got != tt.want {
				t.Errorf("IntersectsInset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageEffectiveBox(t *testing.T) {
	media := Rect{X0: 0, Top: 0, X1: 612, Bottom: 792}
	crop := Rect{X0: 10, Top: 10, X1: 602, Bottom: 782}

	p := &Page{Number: 1, MediaBox: media}
	if got := p.EffectiveBox(); got != media {
		t.Errorf("EffectiveBox() without crop = %+v, want media box", got)
	}

	p.CropBox = &crop
	if got := p.EffectiveBox(); got != crop {
		t.Errorf("EffectiveBox() with crop = %+v, want crop box", got)
	}
}

func TestRectFromPDF(t *testing.T) {
	// PDF space is bottom-up: a box from y=100 to y=700 on a 792pt page
	// maps to Top=92, Bottom=692.
	r := rectFromPDF(50, 100, 550, 700, 792)
	want := Rect{X0: 50, Top: 92, X1: 550, Bottom: 692}
	if r != want {
		t.Errorf("rectFromPDF() = %+v, want %+v", r, want)
	}

	// Inverted corner order normalizes.
	r = rectFromPDF(550, 700, 50, 100, 792)
	if r != want {
		t.Errorf("rectFromPDF() inverted = %+v, want %+v", r, want)
	}
}

func TestAssembleText(t *testing.T) {
	frag := func(s string, x, y, w float64) text.TextFragment {
		return text.TextFragment{Text: s, X: x, Y: y, Width: w, Height: 10, FontSize: 10}
	}

	tests := []struct {
		name      string
		fragments []text.TextFragment
		want      string
	}{
		{
			name: "empty", fragments: nil, want: "",
		},
		{
			name: "adjacent fragments join without space",
			fragments: []text.TextFragment{
				frag("Hel", 10, 700, 20),
				frag("lo", 30, 700, 12),
			},
			want: "Hello",
		},
		{
			name: "word gap inserts space",
			fragments: []text.TextFragment{
				frag("Hello", 10, 700, 30),
				frag("world", 50, 700, 30),
			},
			want: "Hello world",
		},
		{
			name: "line break inserts newline",
			fragments: []text.TextFragment{
				frag("first", 10, 700, 30),
				frag("second", 10, 680, 40),
			},
			want: "first\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assembleText(tt.fragments); got != tt.want {
				t.Errorf("assembleText() = %q, want %q", got, tt.want)
			}
		})
	}
}
