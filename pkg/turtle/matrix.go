package turtle

import (
	"math"

	"github.com/matzehuels/linden/pkg/errors"
)

// Matrix is a square rotation matrix applied to the turtle's facing.
// A nil Matrix is the identity.
type Matrix [][]float64

// Rotation2D returns the counter-clockwise rotation by theta radians. The sine
// and cosine are rounded to ten decimals so quarter turns come out exact.
func Rotation2D(theta float64) Matrix {
	c, s := round10(math.Cos(theta)), round10(math.Sin(theta))
	return Matrix{
		{c, -s},
		{s, c},
	}
}

// RotationX returns the 3D rotation by theta radians about the x axis.
func RotationX(theta float64) Matrix {
	c, s := round10(math.Cos(theta)), round10(math.Sin(theta))
	return Matrix{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the 3D rotation by theta radians about the y axis.
func RotationY(theta float64) Matrix {
	c, s := round10(math.Cos(theta)), round10(math.Sin(theta))
	return Matrix{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the 3D rotation by theta radians about the z axis.
func RotationZ(theta float64) Matrix {
	c, s := round10(math.Cos(theta)), round10(math.Sin(theta))
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Apply returns m·v. A nil m returns a copy of v.
func (m Matrix) Apply(v Vec) Vec {
	if m == nil {
		return v.Clone()
	}
	out := make(Vec, len(m))
	for i, row := range m {
		for j, x := range row {
			out[i] += x * v[j]
		}
	}
	return out
}

func (m Matrix) validate(d int) error {
	if m == nil {
		return nil
	}
	if len(m) != d {
		return errors.New(errors.ErrCodeInvalidDimensions, "rotation has %d rows, want %d", len(m), d)
	}
	for i, row := range m {
		if len(row) != d {
			return errors.New(errors.ErrCodeInvalidDimensions, "rotation row %d has %d columns, want %d", i, len(row), d)
		}
		for _, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return errors.New(errors.ErrCodeInvalidDimensions, "rotation row %d has a non-finite entry", i)
			}
		}
	}
	return nil
}

func round10(x float64) float64 {
	r := math.Round(x*1e10) / 1e10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
