package frames

import (
	"math"

	"github.com/matzehuels/linden/pkg/turtle"
)

// Fit moves segs so their bounding box starts at the origin and scales them
// uniformly so the first two axes fit inside aspect[0] by aspect[1]. An axis
// with no extent does not constrain the scale; a shape with no extent at all
// is only translated. The input is not modified.
func Fit(segs []turtle.Segment, aspect [2]float64) []turtle.Segment {
	lo, hi := turtle.Bounds(segs)
	if lo == nil {
		return nil
	}

	scale := math.Inf(1)
	for axis := range min(len(lo), 2) {
		if extent := hi[axis] - lo[axis]; extent > 0 {
			scale = min(scale, aspect[axis]/extent)
		}
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	out := make([]turtle.Segment, len(segs))
	for i, s := range segs {
		out[i] = turtle.Segment{
			Start: s.Start.Sub(lo).Scale(scale),
			End:   s.End.Sub(lo).Scale(scale),
		}
	}
	return out
}
