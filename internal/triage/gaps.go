package triage

import "sort"

// interval is an image bounding box projected onto one axis.
type interval struct {
	start, end float64
}

// hasCenterGap reports whether the intervals form two distinct groups
// separated by a meaningful gap around the axis midpoint. The check is
// deliberately conservative: a single interval crossing the midpoint, or
// intervals that merge across it within tolerance, never split, and the gap
// itself must be at least minGapRatio of the axis length.
func hasCenterGap(intervals []interval, totalLength float64) bool {
	if len(intervals) == 0 {
		return false
	}

	sorted := make([]interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	mid := totalLength / 2

	// A single interval covering the midpoint means one region, not two.
	for _, iv := range sorted {
		if iv.start < mid && iv.end > mid {
			return false
		}
	}

	// Merge near-adjacent intervals so a strip of tiled images reads as one
	// block.
	merged := []interval{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if next.start <= last.end+gapTolerance {
			if next.end > last.end {
				last.end = next.end
			}
		} else {
			merged = append(merged, next)
		}
	}

	for _, iv := range merged {
		if iv.start < mid && iv.end > mid {
			return false
		}
	}

	minGap := totalLength * minGapRatio
	hasBefore, hasAfter := false, false
	for _, iv := range merged {
		if iv.end <= mid {
			hasBefore = true
		}
		if iv.start >= mid {
			hasAfter = true
		}
	}
	if !hasBefore || !hasAfter {
		return false
	}

	for i := 0; i < len(merged)-1; i++ {
		gap := merged[i+1].start - merged[i].end
		if gap >= minGap && merged[i].end <= mid && merged[i+1].start >= mid {
			return true
		}
	}
	return false
}
