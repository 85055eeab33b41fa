package triage

// assembler folds page verdicts into the ordered segment list. Consecutive
// document pages collapse into one multi-page segment; every other verdict
// emits its own segment(s) immediately, and dropped pages emit nothing but
// still break a pending run.
type assembler struct {
	segments  []DocumentSegment
	runPages  []int
	runCovers []float64
}

func (a *assembler) add(v PageVerdict) {
	switch v.Type {
	case PageTypeDocument:
		a.runPages = append(a.runPages, v.PageNumber)
		a.runCovers = append(a.runCovers, v.ImageCover)
		return
	case PageTypeDropped:
		a.flushRun()
		return
	}

	a.flushRun()
	switch v.Type {
	case PageTypeTopHalf:
		a.emit([]int{v.PageNumber}, PageTypeTopHalf, v.ImageCover)
		a.emit([]int{v.PageNumber}, PageTypeBottomHalf, v.ImageCover)
	case PageTypeLeftHalf:
		a.emit([]int{v.PageNumber}, PageTypeLeftHalf, v.ImageCover)
		a.emit([]int{v.PageNumber}, PageTypeRightHalf, v.ImageCover)
	default:
		a.emit([]int{v.PageNumber}, v.Type, v.ImageCover)
	}
}

// finish flushes any pending run and returns the segment list.
func (a *assembler) finish() []DocumentSegment {
	a.flushRun()
	return a.segments
}

func (a *assembler) flushRun() {
	if len(a.runPages) == 0 {
		return
	}
	var sum float64
	for _, c := range a.runCovers {
		sum += c
	}
	avg := round2(sum / float64(len(a.runCovers)))
	a.emit(a.runPages, PageTypeDocument, avg)
	a.runPages, a.runCovers = nil, nil
}

func (a *assembler) emit(pages []int, segType string, cover float64) {
	a.segments = append(a.segments, DocumentSegment{
		Pages:      pages,
		Type:       segType,
		ImageCover: cover,
	})
}
