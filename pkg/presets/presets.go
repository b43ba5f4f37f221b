// Package presets provides built-in rule sets, instruction tables, and ready
// to run blueprints.
//
// The rule sets cover a quadratic Koch curve, two stochastic plants, a
// three-branch tree, and a 3D bush. Every call returns fresh values, so
// callers may modify what they get.
package presets

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/turtle"
)

// Preset describes a built-in blueprint.
type Preset struct {
	Name        string
	Description string
	build       func() *blueprint.Blueprint
}

// Blueprint returns a fresh copy of the preset's blueprint.
func (p Preset) Blueprint() *blueprint.Blueprint {
	b := p.build()
	b.SetDefaults()
	return b
}

var registry = []Preset{
	{
		Name:        "koch",
		Description: "Quadratic Koch island grown from a short closed path",
		build: func() *blueprint.Blueprint {
			return &blueprint.Blueprint{
				Name:         "koch",
				Rules:        KochCurve(),
				Instructions: Quarter2D(),
				Axiom:        "FF+F-F-F+FF",
				Generations:  6,
				Facing:       turtle.Vec{1, 0},
				Hold:         1,
			}
		},
	},
	{
		Name:        "plant",
		Description: "Stochastic plant with leaning branches",
		build: func() *blueprint.Blueprint {
			return &blueprint.Blueprint{
				Name:         "plant",
				Rules:        Plant2(),
				Instructions: Std2D(math.Pi * 0.125),
				Axiom:        "[+X][X][-X]",
				Generations:  7,
				Start:        turtle.Vec{0.5, 0},
				Facing:       turtle.Vec{0, 1},
				Hold:         4,
			}
		},
	},
	{
		Name:        "bush",
		Description: "Fractal bush with occasional long stems",
		build: func() *blueprint.Blueprint {
			return &blueprint.Blueprint{
				Name:         "bush",
				Rules:        Plant1(),
				Instructions: Std2D(25 * math.Pi / 180),
				Axiom:        "X",
				Generations:  6,
				Facing:       turtle.Vec{0, 1},
				Hold:         2,
			}
		},
	},
	{
		Name:        "tree",
		Description: "Tree with self-copying left, center, and right branches",
		build: func() *blueprint.Blueprint {
			return &blueprint.Blueprint{
				Name:         "tree",
				Rules:        Tree(),
				Instructions: Std2D(math.Pi * 0.125),
				Axiom:        "F[+Z][X][-C]",
				Generations:  5,
				Facing:       turtle.Vec{0, 1},
				Hold:         2,
			}
		},
	},
	{
		Name:        "bush3d",
		Description: "Branching shrub in three dimensions",
		build: func() *blueprint.Blueprint {
			return &blueprint.Blueprint{
				Name:         "bush3d",
				Rules:        Bush3D(),
				Instructions: Std3D(math.Pi / 7),
				Axiom:        "X",
				Generations:  5,
				Dimensions:   3,
				Facing:       turtle.Vec{0, 0, 1},
				Hold:         1,
			}
		},
	},
}

// All returns every preset in a stable order.
func All() []Preset {
	return slices.Clone(registry)
}

// Names returns the preset names.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

// Get returns a fresh blueprint for the named preset. Names are matched
// case-insensitively.
func Get(name string) (*blueprint.Blueprint, error) {
	for _, p := range registry {
		if strings.EqualFold(p.Name, name) {
			return p.Blueprint(), nil
		}
	}
	return nil, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q (available: %s)",
		name, strings.Join(Names(), ", "))
}
