package turtle

import (
	"unicode/utf8"

	"github.com/matzehuels/linden/pkg/errors"
)

// Interpreter walks a turtle through a string and records the lines it draws.
// It is immutable after [New] and safe for concurrent use.
type Interpreter struct {
	ops    map[rune]Instruction
	dims   int
	start  Vec
	facing Vec
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithStart sets the starting position. The default is the origin.
func WithStart(p Vec) Option {
	return func(in *Interpreter) { in.start = p.Clone() }
}

// WithFacing sets the starting facing. The default is the unit vector along
// the first axis.
func WithFacing(f Vec) Option {
	return func(in *Interpreter) { in.facing = f.Clone() }
}

// New validates t for a dims-dimensional turtle and returns an interpreter
// for it. The table is copied.
func New(t Table, dims int, opts ...Option) (*Interpreter, error) {
	if err := t.Validate(dims); err != nil {
		return nil, err
	}
	in := &Interpreter{
		ops:    make(map[rune]Instruction, len(t)),
		dims:   dims,
		start:  Zero(dims),
		facing: Axis(dims, 0),
	}
	for k, ins := range t.Clone() {
		r, _ := utf8.DecodeRuneInString(k)
		in.ops[r] = ins
	}
	for _, opt := range opts {
		opt(in)
	}
	if err := in.start.validate("start position", dims); err != nil {
		return nil, err
	}
	if err := in.facing.validate("facing", dims); err != nil {
		return nil, err
	}
	return in, nil
}

// Dimensions returns the dimension of the turtle's space.
func (in *Interpreter) Dimensions() int {
	return in.dims
}

// Interpret runs the turtle over text and returns the drawn segments in
// order. When nothing is drawn it returns a single zero-length segment at
// the origin, so callers always receive at least one segment.
//
// For each symbol with an instruction the turtle, in order: restores position
// then facing if flagged, saves position then facing if flagged, rotates its
// facing, moves by Movement along the new facing (recording a segment if Draw
// is set), and finally applies the after-movement restores and saves.
// Restoring from an empty stack leaves the state unchanged.
func (in *Interpreter) Interpret(text string) []Segment {
	pos, facing := in.start.Clone(), in.facing.Clone()
	var positions, facings []Vec
	var out []Segment

	for _, ch := range text {
		ins, ok := in.ops[ch]
		if !ok {
			continue
		}
		ops := ins.Stack

		if ops[PopPositionBefore] {
			pos, positions = pop(positions, pos)
		}
		if ops[PopFacingBefore] {
			facing, facings = pop(facings, facing)
		}
		if ops[PushPositionBefore] {
			positions = append(positions, pos)
		}
		if ops[PushFacingBefore] {
			facings = append(facings, facing)
		}

		facing = ins.Rotation.Apply(facing)
		dest := pos.Add(facing.Scale(ins.Movement))
		if ins.Draw {
			out = append(out, Segment{Start: pos.Clone(), End: dest.Clone()})
		}
		pos = dest

		if ops[PopPositionAfter] {
			pos, positions = pop(positions, pos)
		}
		if ops[PopFacingAfter] {
			facing, facings = pop(facings, facing)
		}
		if ops[PushPositionAfter] {
			positions = append(positions, pos)
		}
		if ops[PushFacingAfter] {
			facings = append(facings, facing)
		}
	}

	if len(out) == 0 {
		out = append(out, Segment{Start: Zero(in.dims), End: Zero(in.dims)})
	}
	return out
}

// Interpret is a convenience wrapper around [New] and [Interpreter.Interpret].
func Interpret(text string, t Table, dims int, opts ...Option) ([]Segment, error) {
	in, err := New(t, dims, opts...)
	if err != nil {
		return nil, err
	}
	return in.Interpret(text), nil
}

func pop(stack []Vec, cur Vec) (Vec, []Vec) {
	if len(stack) == 0 {
		return cur, stack
	}
	return stack[len(stack)-1], stack[:len(stack)-1]
}

func validateDims(d int) error {
	if d != 2 && d != 3 {
		return errors.New(errors.ErrCodeInvalidDimensions, "dimensions must be 2 or 3, got %d", d)
	}
	return nil
}
