package turtle

import (
	"math"

	"github.com/matzehuels/linden/pkg/errors"
)

// Vec is a point or direction in 2 or 3 dimensions.
//
// Vec values are treated as immutable: every operation returns a new Vec.
type Vec []float64

// Zero returns the origin in d dimensions.
func Zero(d int) Vec {
	return make(Vec, d)
}

// Axis returns the unit vector along axis i in d dimensions.
func Axis(d, i int) Vec {
	v := Zero(d)
	if i >= 0 && i < d {
		v[i] = 1
	}
	return v
}

// Clone returns a copy of v.
func (v Vec) Clone() Vec {
	return append(Vec(nil), v...)
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	out := v.Clone()
	for i := range out {
		out[i] += o[i]
	}
	return out
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	out := v.Clone()
	for i := range out {
		out[i] -= o[i]
	}
	return out
}

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec {
	out := v.Clone()
	for i := range out {
		out[i] *= k
	}
	return out
}

// Equal reports whether v and o have the same dimension and components.
func (v Vec) Equal(o Vec) bool {
	return v.ApproxEqual(o, 0)
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec) ApproxEqual(o Vec, eps float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec) validate(what string, d int) error {
	if len(v) != d {
		return errors.New(errors.ErrCodeInvalidDimensions, "%s has %d components, want %d", what, len(v), d)
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.New(errors.ErrCodeInvalidDimensions, "%s has a non-finite component", what)
		}
	}
	return nil
}

// Segment is a line drawn by the turtle.
type Segment struct {
	Start Vec `json:"start"`
	End   Vec `json:"end"`
}

// Bounds returns the per-axis minimum and maximum over all segment
// endpoints. It returns nil vectors for an empty slice.
func Bounds(segs []Segment) (lo, hi Vec) {
	for _, s := range segs {
		for _, p := range []Vec{s.Start, s.End} {
			if lo == nil {
				lo, hi = p.Clone(), p.Clone()
				continue
			}
			for i := range p {
				lo[i] = min(lo[i], p[i])
				hi[i] = max(hi[i], p[i])
			}
		}
	}
	return lo, hi
}
