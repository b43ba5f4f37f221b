// Package turtle converts symbol strings into line segments with a
// turtle-graphics state machine.
//
// The turtle has a position and a facing in 2 or 3 dimensions, plus two
// independent stacks used to save and restore them. A [Table] assigns an
// [Instruction] to each single-character symbol: whether to draw, how far to
// move along the facing, how to rotate the facing first, and which of eight
// stack operations to run before and after moving.
//
// Symbols with no entry in the table are skipped, and no symbol is special
// to the interpreter: branching with "[" and "]" is simply a table entry
// carrying the [Push] or [Pop] flags.
//
//	table := turtle.Table{
//	    "F": {Draw: true, Movement: 1},
//	    "+": {Rotation: turtle.Rotation2D(math.Pi / 2)},
//	    "[": {Stack: turtle.Push},
//	    "]": {Stack: turtle.Pop},
//	}
//	in, _ := turtle.New(table, 2, turtle.WithFacing(turtle.Vec{0, 1}))
//	segs := in.Interpret("F[+F]F")
package turtle
