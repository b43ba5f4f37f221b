package turtle

import (
	"math"
	"testing"
)

func TestRotation2DQuarterTurnsExact(t *testing.T) {
	tests := []struct {
		theta float64
		want  Matrix
	}{
		{0, Matrix{{1, 0}, {0, 1}}},
		{math.Pi / 2, Matrix{{0, -1}, {1, 0}}},
		{math.Pi, Matrix{{-1, 0}, {0, -1}}},
		{3 * math.Pi / 2, Matrix{{0, 1}, {-1, 0}}},
	}
	for _, tt := range tests {
		got := Rotation2D(tt.theta)
		for i := range tt.want {
			for j := range tt.want[i] {
				if got[i][j] != tt.want[i][j] {
					t.Errorf("Rotation2D(%v) = %v, want %v", tt.theta, got, tt.want)
				}
			}
		}
	}
}

func TestMatrixApply(t *testing.T) {
	if got := Matrix(nil).Apply(Vec{1, 2}); !got.Equal(Vec{1, 2}) {
		t.Errorf("nil.Apply() = %v, want identity", got)
	}
	if got := RotationZ(0).Apply(Vec{1, 2, 3}); !got.Equal(Vec{1, 2, 3}) {
		t.Errorf("RotationZ(0).Apply() = %v, want [1 2 3]", got)
	}
	if got := RotationX(math.Pi / 2).Apply(Vec{0, 1, 0}); !got.ApproxEqual(Vec{0, 0, 1}, 1e-12) {
		t.Errorf("RotationX(pi/2).Apply(y) = %v, want z", got)
	}
}

func TestMatrixQuarterTurns(t *testing.T) {
	quarter := Rotation2D(math.Pi / 2)
	if got := quarter.Apply(quarter.Apply(Vec{1, 0})); !got.Equal(Vec{-1, 0}) {
		t.Errorf("two quarter turns applied to x = %v, want [-1 0]", got)
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{1, 2}
	if got := v.Add(Vec{3, 4}); !got.Equal(Vec{4, 6}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Sub(Vec{3, 4}); !got.Equal(Vec{-2, -2}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := v.Scale(2); !got.Equal(Vec{2, 4}) {
		t.Errorf("Scale() = %v", got)
	}
	if !v.Equal(Vec{1, 2}) {
		t.Errorf("operations mutated receiver: %v", v)
	}
	if v.Equal(Vec{1, 2, 0}) {
		t.Error("Equal() across dimensions should be false")
	}
	if got := Axis(3, 2); !got.Equal(Vec{0, 0, 1}) {
		t.Errorf("Axis(3, 2) = %v", got)
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]Segment{
		{Start: Vec{0, 0}, End: Vec{2, -1}},
		{Start: Vec{-3, 5}, End: Vec{1, 1}},
	})
	if !lo.Equal(Vec{-3, -1}) || !hi.Equal(Vec{2, 5}) {
		t.Errorf("Bounds() = %v, %v, want [-3 -1], [2 5]", lo, hi)
	}

	lo, hi = Bounds(nil)
	if lo != nil || hi != nil {
		t.Errorf("Bounds(nil) = %v, %v, want nil, nil", lo, hi)
	}
}
