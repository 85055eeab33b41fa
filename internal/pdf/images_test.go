package pdf

import (
	"math"
	"testing"

	"github.com/tsawler/tabula/contentstream"
	"github.com/tsawler/tabula/model"
)

func parseOps(t *testing.T, stream string) []contentstream.Operation {
	t.Helper()
	ops, err := contentstream.NewParser([]byte(stream)).Parse()
	if err != nil {
		t.Fatalf("parse content stream: %v", err)
	}
	return ops
}

func rectClose(a, b Rect) bool {
	const eps = 1e-6
	return math.Abs(a.X0-b.X0) < eps && math.Abs(a.Top-b.Top) < eps &&
		math.Abs(a.X1-b.X1) < eps && math.Abs(a.Bottom-b.Bottom) < eps
}

func TestScanImageOps(t *testing.T) {
	names := map[string]bool{"Im1": true, "Im2": true}

	t.Run("single placement", func(t *testing.T) {
		ops := parseOps(t, "q 100 0 0 50 20 30 cm /Im1 Do Q")
		images := scanImageOps(ops, names, 200)
		if len(images) != 1 {
			t.Fatalf("got %d images, want 1", len(images))
		}
		// 100x50 image at PDF origin (20,30) on a 200pt page flips to
		// Top=120, Bottom=170.
		want := Rect{X0: 20, Top: 120, X1: 120, Bottom: 170}
		if !rectClose(images[0].Rect, want) {
			t.Errorf("placement = %+v, want %+v", images[0].Rect, want)
		}
	})

	t.Run("q restores transform", func(t *testing.T) {
		ops := parseOps(t, "q 100 0 0 50 0 0 cm /Im1 Do Q q 200 0 0 80 10 20 cm /Im2 Do Q")
		images := scanImageOps(ops, names, 800)
		if len(images) != 2 {
			t.Fatalf("got %d images, want 2", len(images))
		}
		want0 := Rect{X0: 0, Top: 750, X1: 100, Bottom: 800}
		want1 := Rect{X0: 10, Top: 700, X1: 210, Bottom: 780}
		if !rectClose(images[0].Rect, want0) {
			t.Errorf("first placement = %+v, want %+v", images[0].Rect, want0)
		}
		if !rectClose(images[1].Rect, want1) {
			t.Errorf("second placement = %+v, want %+v", images[1].Rect, want1)
		}
	})

	t.Run("nested transforms compose", func(t *testing.T) {
		// Outer translation then inner scale.
		ops := parseOps(t, "q 1 0 0 1 50 100 cm q 100 0 0 50 0 0 cm /Im1 Do Q Q")
		images := scanImageOps(ops, names, 400)
		if len(images) != 1 {
			t.Fatalf("got %d images, want 1", len(images))
		}
		want := Rect{X0: 50, Top: 250, X1: 150, Bottom: 300}
		if !rectClose(images[0].Rect, want) {
			t.Errorf("placement = %+v, want %+v", images[0].Rect, want)
		}
	})

	t.Run("non-image xobjects ignored", func(t *testing.T) {
		ops := parseOps(t, "q 100 0 0 50 0 0 cm /Form1 Do Q")
		images := scanImageOps(ops, names, 400)
		if len(images) != 0 {
			t.Fatalf("got %d images, want 0", len(images))
		}
	})

	t.Run("text operators do not confuse the scanner", func(t *testing.T) {
		ops := parseOps(t, "BT /F1 12 Tf 72 700 Td (Hello) Tj ET q 50 0 0 50 10 10 cm /Im1 Do Q")
		images := scanImageOps(ops, names, 800)
		if len(images) != 1 {
			t.Fatalf("got %d images, want 1", len(images))
		}
	})
}

func TestUnitSquareBBox(t *testing.T) {
	t.Run("negative scale normalizes", func(t *testing.T) {
		// Mirrored image: negative horizontal scale still yields an
		// ordered box.
		m := model.Matrix{-100, 0, 0, 50, 120, 30}
		got := unitSquareBBox(m, 200)
		want := Rect{X0: 20, Top: 120, X1: 120, Bottom: 170}
		if !rectClose(got, want) {
			t.Errorf("unitSquareBBox() = %+v, want %+v", got, want)
		}
	})

	t.Run("rotation covers transformed corners", func(t *testing.T) {
		// 90 degree rotation of a 100x50 image about the origin.
		m := model.Matrix{0, 100, -50, 0, 0, 0}
		got := unitSquareBBox(m, 200)
		want := Rect{X0: -50, Top: 100, X1: 0, Bottom: 200}
		if !rectClose(got, want) {
			t.Errorf("unitSquareBBox() = %+v, want %+v", got, want)
		}
	})
}
