package presets

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/lsystem"
	"github.com/matzehuels/linden/pkg/turtle"
)

func TestPresetsValidate(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			b := p.Blueprint()
			if err := b.Validate(); err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if b.Name != p.Name {
				t.Errorf("Blueprint().Name = %q, want %q", b.Name, p.Name)
			}
		})
	}
}

func TestPresetsGenerate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			b, err := Get(name)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			// Keep the test fast; the full schedules grow large.
			b.Generations = min(b.Generations, 4)

			seq, err := b.Sequence(b.Source())
			if err != nil {
				t.Fatalf("Sequence() error: %v", err)
			}
			in, err := b.Interpreter()
			if err != nil {
				t.Fatalf("Interpreter() error: %v", err)
			}

			gens := slices.Collect(seq.Strings())
			if len(gens) != b.Generations {
				t.Fatalf("got %d generations, want %d", len(gens), b.Generations)
			}
			if gens[0] != b.Axiom {
				t.Errorf("generation 0 = %q, want axiom %q", gens[0], b.Axiom)
			}
			last := gens[len(gens)-1]
			if len(last) <= len(gens[0]) {
				t.Errorf("generation %d did not grow: %q", len(gens)-1, last)
			}
			if segs := in.Interpret(last); len(segs) < 2 {
				t.Errorf("last generation drew %d segments", len(segs))
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("fern")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Fatalf("Get() error = %v, want %s", err, errors.ErrCodePresetNotFound)
	}
	if !strings.Contains(err.Error(), "koch") {
		t.Errorf("Get() error %q should list available presets", err)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	if _, err := Get("Plant"); err != nil {
		t.Errorf("Get(Plant) error: %v", err)
	}
}

func TestGetReturnsFreshCopies(t *testing.T) {
	a, _ := Get("koch")
	a.Rules[0].Enabled = false
	a.Instructions["F"] = turtle.Instruction{}

	b, _ := Get("koch")
	if !b.Rules[0].Enabled {
		t.Error("Get() shares rules between calls")
	}
	if !b.Instructions["F"].Draw {
		t.Error("Get() shares instructions between calls")
	}
}

func TestKochCurve(t *testing.T) {
	g, err := lsystem.Compile(KochCurve())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	src := lsystem.NewSource(1)
	if got := g.Rewrite("", 1, src); got != "F" {
		t.Errorf("Rewrite(\"\", 1) = %q, want F", got)
	}
	if got := g.Rewrite("", 2, src); got != "F+F-F-FF+F+F-F" {
		t.Errorf("Rewrite(\"\", 2) = %q", got)
	}
}

func TestKochWithoutAxiom(t *testing.T) {
	rules := Koch("F-F", "")
	if len(rules) != 1 || rules[0].Name != "Elaboration" {
		t.Errorf("Koch() without axiom = %+v", rules)
	}
}

func TestStd2D(t *testing.T) {
	table := Std2D(math.Pi / 2)
	in, err := turtle.New(table, 2)
	if err != nil {
		t.Fatalf("turtle.New() error: %v", err)
	}

	segs := in.Interpret("F+F-F|F")
	want := []turtle.Vec{{1, 0}, {1, 1}, {2, 1}, {1, 1}}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i, end := range want {
		if !segs[i].End.ApproxEqual(end, 1e-9) {
			t.Errorf("segment %d end = %v, want %v", i, segs[i].End, end)
		}
	}

	// Sixteen small turns make one full turn.
	small := in.Interpret(strings.Repeat(".", 16) + "F")
	if !small[0].End.ApproxEqual(turtle.Vec{0, 1}, 1e-6) {
		t.Errorf("16 small turns then F ends at %v, want [0 1]", small[0].End)
	}
}

func TestQuarter2DMatchesStd2D(t *testing.T) {
	q, s := Quarter2D(), Std2D(math.Pi/2)
	for _, sym := range []string{"+", "-"} {
		for i := range 2 {
			for j := range 2 {
				if q[sym].Rotation[i][j] != s[sym].Rotation[i][j] {
					t.Errorf("%s rotation differs at [%d][%d]: %v vs %v", sym, i, j, q[sym].Rotation, s[sym].Rotation)
				}
			}
		}
	}
}

func TestStd3DValid(t *testing.T) {
	if err := Std3D(math.Pi / 6).Validate(3); err != nil {
		t.Errorf("Std3D().Validate(3) error: %v", err)
	}
	if err := Std3D(math.Pi / 6).Validate(2); err == nil {
		t.Error("Std3D().Validate(2) expected error")
	}
}
