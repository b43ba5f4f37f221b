package turtle

import (
	"math"
	"slices"

	"github.com/matzehuels/linden/pkg/errors"
)

// Stack flag positions within [StackOps]. The first four apply before the
// turtle rotates and moves, the last four after.
const (
	PopPositionBefore = iota
	PopFacingBefore
	PushPositionBefore
	PushFacingBefore
	PopPositionAfter
	PopFacingAfter
	PushPositionAfter
	PushFacingAfter
)

// StackOps holds the eight save/restore flags of an [Instruction].
type StackOps [8]bool

// Push saves position and facing before moving, as a branch opener does.
var Push = StackOps{PushPositionBefore: true, PushFacingBefore: true}

// Pop restores position and facing before moving, as a branch closer does.
var Pop = StackOps{PopPositionBefore: true, PopFacingBefore: true}

// Instruction tells the turtle what to do for one symbol.
type Instruction struct {
	Draw     bool     `json:"draw" toml:"draw" yaml:"draw" mapstructure:"draw"`
	Movement float64  `json:"movement" toml:"movement" yaml:"movement" mapstructure:"movement"`
	Rotation Matrix   `json:"rotation,omitempty" toml:"rotation,omitempty" yaml:"rotation,omitempty" mapstructure:"rotation"`
	Stack    StackOps `json:"stack" toml:"stack" yaml:"stack" mapstructure:"stack"`
}

// Table maps single-character symbols to instructions. Symbols without an
// entry are ignored by the interpreter.
type Table map[string]Instruction

// Validate checks that every key is one character and every instruction fits
// a d-dimensional turtle. Keys are checked in sorted order so the reported
// offender is stable.
func (t Table) Validate(d int) error {
	if err := validateDims(d); err != nil {
		return err
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if err := errors.ValidateSymbol(k); err != nil {
			return err
		}
		ins := t[k]
		if math.IsNaN(ins.Movement) || math.IsInf(ins.Movement, 0) {
			return errors.New(errors.ErrCodeInvalidInstruction, "instruction %q: movement must be finite", k)
		}
		if err := ins.Rotation.validate(d); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInstruction, err, "instruction %q", k)
		}
	}
	return nil
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, ins := range t {
		if ins.Rotation != nil {
			rot := make(Matrix, len(ins.Rotation))
			for i, row := range ins.Rotation {
				rot[i] = slices.Clone(row)
			}
			ins.Rotation = rot
		}
		out[k] = ins
	}
	return out
}
