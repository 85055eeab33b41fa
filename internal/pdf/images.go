package pdf

import (
	"github.com/tsawler/tabula/contentstream"
	"github.com/tsawler/tabula/core"
	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/pages"
)

// imagePlacements scans a page's content stream and returns the placement
// box of every image XObject drawn on it. Placement is recovered from the
// current transformation matrix at each Do operator: an image is painted
// into the unit square, so its device-space footprint is the CTM image of
// that square.
func (d *tabulaDocument) imagePlacements(pg *pages.Page, flipY float64) ([]Image, error) {
	names, err := d.imageXObjectNames(pg)
	if err != nil || len(names) == 0 {
		return nil, err
	}

	contents, err := pg.Contents()
	if err != nil || contents == nil {
		return nil, err
	}

	var data []byte
	for _, obj := range contents {
		stream, ok := obj.(*core.Stream)
		if !ok {
			continue
		}
		decoded, err := stream.Decode()
		if err != nil {
			return nil, err
		}
		data = append(data, decoded...)
	}
	if len(data) == 0 {
		return nil, nil
	}

	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return nil, err
	}

	return scanImageOps(ops, names, flipY), nil
}

// scanImageOps walks parsed content stream operations tracking the graphics
// state, and records the placement box for every Do of a known image name.
func scanImageOps(ops []contentstream.Operation, names map[string]bool, flipY float64) []Image {
	gs := graphicsstate.NewGraphicsState()
	var images []Image

	for _, op := range ops {
		switch op.Operator {
		case "q":
			gs.Save()
		case "Q":
			// Unbalanced Q is common in messy PDFs; keep scanning.
			_ = gs.Restore()
		case "cm":
			if len(op.Operands) == 6 {
				var m model.Matrix
				ok := true
				for i := 0; i < 6; i++ {
					v, isNum := operandFloat(op.Operands[i])
					if !isNum {
						ok = false
						break
					}
					m[i] = v
				}
				if ok {
					// cm prepends: the new matrix maps into the
					// previous user space.
					gs.CTM = m.Multiply(gs.CTM)
				}
			}
		case "Do":
			if len(op.Operands) != 1 {
				continue
			}
			name, ok := op.Operands[0].(core.Name)
			if !ok || !names[string(name)] {
				continue
			}
			images = append(images, Image{Rect: unitSquareBBox(gs.CTM, flipY)})
		}
	}

	return images
}

// imageXObjectNames returns the names of the XObjects in the page resources
// whose subtype is Image.
func (d *tabulaDocument) imageXObjectNames(pg *pages.Page) (map[string]bool, error) {
	resources, err := pg.Resources()
	if err != nil || resources == nil {
		return nil, nil
	}

	xobjObj := resources.Get("XObject")
	if xobjObj == nil {
		return nil, nil
	}

	resolved, err := d.r.Resolve(xobjObj)
	if err != nil {
		return nil, err
	}

	xobjects, ok := resolved.(core.Dict)
	if !ok {
		return nil, nil
	}

	names := make(map[string]bool)
	for name, ref := range xobjects {
		obj, err := d.r.Resolve(ref)
		if err != nil {
			continue
		}
		stream, ok := obj.(*core.Stream)
		if !ok {
			continue
		}
		subtype, ok := stream.Dict.Get("Subtype").(core.Name)
		if ok && string(subtype) == "Image" {
			names[name] = true
		}
	}
	return names, nil
}

// unitSquareBBox transforms the unit square through m and returns its
// top-down bounding box.
func unitSquareBBox(m model.Matrix, flipY float64) Rect {
	corners := [4]model.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}

	p := m.Transform(corners[0])
	minX, maxX := p.X, p.X
	minY, maxY := p.Y, p.Y
	for _, c := range corners[1:] {
		p := m.Transform(c)
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Rect{X0: minX, Top: flipY - maxY, X1: maxX, Bottom: flipY - minY}
}

func operandFloat(obj core.Object) (float64, bool) {
	switch v := obj.(type) {
	case core.Int:
		return float64(v), true
	case core.Real:
		return float64(v), true
	}
	return 0, false
}
