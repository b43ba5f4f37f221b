// Package blueprint defines the serializable parameter set that reproduces a
// run: the grammar, the instruction table, the turtle's starting state, the
// frame schedule, and the random seed.
//
// Blueprints are stored as JSON, TOML, or YAML (chosen by file extension) and
// can also be converted to and from plain nested maps for callers that keep
// their own document store. Loading a saved blueprint and running it with the
// same seed reproduces the same generations.
package blueprint

import (
	"math"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/lsystem"
	"github.com/matzehuels/linden/pkg/turtle"
)

// Default values applied by [Blueprint.SetDefaults].
const (
	DefaultGenerations = 6
	DefaultDimensions  = 2
	DefaultSeed        = 42
)

// MaxSeed is the largest accepted seed. TOML integers are signed 64-bit.
const MaxSeed = math.MaxInt64

// Blueprint is everything needed to regenerate a sequence of frames.
type Blueprint struct {
	// Name identifies the blueprint and names output files.
	Name string `json:"name" toml:"name" yaml:"name" mapstructure:"name"`

	// Rules is the ordered grammar.
	Rules []lsystem.Rule `json:"rules" toml:"rules" yaml:"rules" mapstructure:"rules"`

	// Instructions maps symbols to turtle instructions.
	Instructions turtle.Table `json:"instructions" toml:"instructions" yaml:"instructions" mapstructure:"instructions"`

	// Axiom is generation 0.
	Axiom string `json:"axiom" toml:"axiom" yaml:"axiom" mapstructure:"axiom"`

	// Generations is the number of generations per pass, axiom included.
	Generations int `json:"generations" toml:"generations" yaml:"generations" mapstructure:"generations"`

	// Step is the number of rewrites between consecutive generations.
	Step int `json:"step" toml:"step" yaml:"step" mapstructure:"step"`

	// Dimensions is 2 or 3.
	Dimensions int `json:"dimensions" toml:"dimensions" yaml:"dimensions" mapstructure:"dimensions"`

	Start  turtle.Vec `json:"start" toml:"start" yaml:"start" mapstructure:"start"`
	Facing turtle.Vec `json:"facing" toml:"facing" yaml:"facing" mapstructure:"facing"`

	// AspectRatio is the width and height of the box frames are fitted into.
	AspectRatio [2]float64 `json:"aspect_ratio" toml:"aspect_ratio" yaml:"aspect_ratio" mapstructure:"aspect_ratio"`

	// Hold is the number of extra times the last generation is shown.
	Hold int `json:"hold" toml:"hold" yaml:"hold" mapstructure:"hold"`

	Seed uint64 `json:"seed" toml:"seed" yaml:"seed" mapstructure:"seed"`
}

// SetDefaults fills zero-valued fields. Start defaults to the origin and
// Facing to the first axis.
func (b *Blueprint) SetDefaults() {
	if b.Generations == 0 {
		b.Generations = DefaultGenerations
	}
	if b.Step == 0 {
		b.Step = 1
	}
	if b.Dimensions == 0 {
		b.Dimensions = DefaultDimensions
	}
	if b.Start == nil {
		b.Start = turtle.Zero(b.Dimensions)
	}
	if b.Facing == nil {
		b.Facing = turtle.Axis(b.Dimensions, 0)
	}
	if b.AspectRatio == [2]float64{} {
		b.AspectRatio = [2]float64{1, 1}
	}
	if b.Seed == 0 {
		b.Seed = DefaultSeed
	}
}

// Validate checks the blueprint. Rule and instruction problems are reported
// with the offending rule name or symbol.
func (b *Blueprint) Validate() error {
	if err := errors.ValidateName(b.Name); err != nil {
		return err
	}
	switch {
	case b.Generations < 1:
		return errors.New(errors.ErrCodeInvalidBlueprint, "generations must be at least 1, got %d", b.Generations)
	case b.Step < 1:
		return errors.New(errors.ErrCodeInvalidBlueprint, "step must be at least 1, got %d", b.Step)
	case b.Hold < 0:
		return errors.New(errors.ErrCodeInvalidBlueprint, "hold cannot be negative, got %d", b.Hold)
	case b.AspectRatio[0] <= 0 || b.AspectRatio[1] <= 0:
		return errors.New(errors.ErrCodeInvalidBlueprint, "aspect ratio must be positive, got %v", b.AspectRatio)
	case b.Seed > MaxSeed:
		return errors.New(errors.ErrCodeInvalidBlueprint, "seed must be at most %d, got %d", uint64(MaxSeed), b.Seed)
	}
	if _, err := b.Grammar(); err != nil {
		return err
	}
	if _, err := b.Interpreter(); err != nil {
		return err
	}
	return nil
}

// Grammar compiles the rules.
func (b *Blueprint) Grammar() (*lsystem.Grammar, error) {
	return lsystem.Compile(b.Rules)
}

// Interpreter builds a turtle interpreter from the instructions and starting
// state.
func (b *Blueprint) Interpreter() (*turtle.Interpreter, error) {
	return turtle.New(b.Instructions, b.Dimensions, turtle.WithStart(b.Start), turtle.WithFacing(b.Facing))
}

// Source returns a fresh random source seeded from the blueprint.
func (b *Blueprint) Source() lsystem.Source {
	return lsystem.NewSource(b.Seed)
}

// Sequence returns one pass of generations drawing from src. Extra options
// are applied after the blueprint's own limit and step.
func (b *Blueprint) Sequence(src lsystem.Source, opts ...lsystem.SequenceOption) (*lsystem.Sequence, error) {
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	opts = append([]lsystem.SequenceOption{lsystem.WithLimit(b.Generations), lsystem.WithStep(b.Step)}, opts...)
	return lsystem.NewSequence(g, b.Axiom, src, opts...), nil
}
