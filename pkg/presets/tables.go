package presets

import (
	"math"

	"github.com/matzehuels/linden/pkg/turtle"
)

// Std2D returns the standard 2D instruction table with turning angle theta
// (radians). The reverse turn "-" rotates by 2π-theta.
//
//	F, G  draw forward one unit
//	f     move forward one unit without drawing
//	+ -   turn by theta and by the reverse angle
//	. ,   small turns: a sixteenth of + and of -
//	|     turn around
//	[ ]   save and restore position and facing
func Std2D(theta float64) turtle.Table {
	return Std2DReverse(theta, 2*math.Pi-theta)
}

// Std2DReverse is like [Std2D] with an explicit reverse angle for "-".
func Std2DReverse(theta, reverse float64) turtle.Table {
	return turtle.Table{
		"F": {Draw: true, Movement: 1},
		"G": {Draw: true, Movement: 1},
		"f": {Movement: 1},
		"+": {Rotation: turtle.Rotation2D(theta)},
		"-": {Rotation: turtle.Rotation2D(reverse)},
		".": {Rotation: turtle.Rotation2D(theta / 16)},
		",": {Rotation: turtle.Rotation2D(2*math.Pi - (2*math.Pi-reverse)/16)},
		"|": {Rotation: turtle.Matrix{{-1, 0}, {0, -1}}},
		"[": {Stack: turtle.Push},
		"]": {Stack: turtle.Pop},
	}
}

// Quarter2D returns the right-angle 2D table used by the Koch curve.
func Quarter2D() turtle.Table {
	return turtle.Table{
		"F": {Draw: true, Movement: 1},
		"f": {Movement: 1},
		"+": {Rotation: turtle.Matrix{{0, -1}, {1, 0}}},
		"-": {Rotation: turtle.Matrix{{0, 1}, {-1, 0}}},
		"|": {Rotation: turtle.Matrix{{-1, 0}, {0, -1}}},
		"[": {Stack: turtle.Push},
		"]": {Stack: turtle.Pop},
	}
}

// Std3D returns a 3D table turning by theta about fixed world axes.
//
//	F, G  draw forward one unit
//	f     move forward one unit without drawing
//	+ -   turn about z
//	& ^   turn about y
//	\ /   turn about x
//	|     turn around about z
//	[ ]   save and restore position and facing
func Std3D(theta float64) turtle.Table {
	return turtle.Table{
		"F":  {Draw: true, Movement: 1},
		"G":  {Draw: true, Movement: 1},
		"f":  {Movement: 1},
		"+":  {Rotation: turtle.RotationZ(theta)},
		"-":  {Rotation: turtle.RotationZ(-theta)},
		"&":  {Rotation: turtle.RotationY(theta)},
		"^":  {Rotation: turtle.RotationY(-theta)},
		"\\": {Rotation: turtle.RotationX(theta)},
		"/":  {Rotation: turtle.RotationX(-theta)},
		"|":  {Rotation: turtle.RotationZ(math.Pi)},
		"[":  {Stack: turtle.Push},
		"]":  {Stack: turtle.Pop},
	}
}
