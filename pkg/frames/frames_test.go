package frames

import (
	"slices"
	"testing"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/lsystem"
	"github.com/matzehuels/linden/pkg/presets"
	"github.com/matzehuels/linden/pkg/turtle"
)

func kochBlueprint(generations, hold int) *blueprint.Blueprint {
	b := &blueprint.Blueprint{
		Name:         "koch-test",
		Rules:        presets.KochCurve(),
		Instructions: presets.Quarter2D(),
		Generations:  generations,
		Hold:         hold,
	}
	b.SetDefaults()
	return b
}

func labels(frames []Frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Label
	}
	return out
}

func TestProduceLabelsAndHold(t *testing.T) {
	p, err := Produce(kochBlueprint(3, 2), Options{})
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	got := slices.Collect(p.Frames())

	wantLabels := []string{"Generation 0", "Generation 1", "Generation 2", "Generation 2", "Generation 2"}
	if !slices.Equal(labels(got), wantLabels) {
		t.Errorf("labels = %q, want %q", labels(got), wantLabels)
	}
	wantRepeat := []int{0, 0, 0, 1, 2}
	for i, f := range got {
		if f.Repeat != wantRepeat[i] {
			t.Errorf("frame %d Repeat = %d, want %d", i, f.Repeat, wantRepeat[i])
		}
	}
	if got[0].Text != "" || got[1].Text != "F" {
		t.Errorf("texts = %q, %q", got[0].Text, got[1].Text)
	}
	if len(got[0].Segments) != 1 {
		t.Errorf("empty generation has %d segments, want 1 placeholder", len(got[0].Segments))
	}
	if len(got[2].Segments) != 8 {
		t.Errorf("generation 2 has %d segments, want 8", len(got[2].Segments))
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v", p.Err())
	}
}

func TestProduceLengthCap(t *testing.T) {
	p, err := Produce(kochBlueprint(4, 3), Options{MaxLength: 5})
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	got := slices.Collect(p.Frames())
	if !slices.Equal(labels(got), []string{"Generation 0", "Generation 1"}) {
		t.Errorf("labels = %q, want two generations and no held frames", labels(got))
	}
	if !errors.Is(p.Err(), errors.ErrCodeLengthExceeded) {
		t.Errorf("Err() = %v, want %s", p.Err(), errors.ErrCodeLengthExceeded)
	}
}

func TestProduceInvalidBlueprint(t *testing.T) {
	b := kochBlueprint(3, 0)
	b.Rules[1].Predecessor = "("
	if _, err := Produce(b, Options{}); !errors.Is(err, errors.ErrCodeInvalidRule) {
		t.Errorf("Produce() error = %v, want %s", err, errors.ErrCodeInvalidRule)
	}
}

func TestProduceSourceOverride(t *testing.T) {
	b := kochBlueprint(2, 0)
	src := lsystem.NewFixedSource(0.5)
	p, err := Produce(b, Options{Source: src})
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	for range p.Frames() {
	}
	if src.Draws() != 1 {
		t.Errorf("Draws() = %d, want 1 (axiom rule only)", src.Draws())
	}
}

func TestBuild(t *testing.T) {
	in, err := turtle.New(presets.Quarter2D(), 2)
	if err != nil {
		t.Fatal(err)
	}
	got := Build([]string{"", "F", "FF"}, in, 1)

	want := []string{"Generation 0", "Generation 1", "Generation 2", "Generation 2"}
	if !slices.Equal(labels(got), want) {
		t.Errorf("labels = %q, want %q", labels(got), want)
	}
	if got[3].Repeat != 1 || len(got[3].Segments) != 2 {
		t.Errorf("held frame = %+v", got[3])
	}
	if len(Build(nil, in, 3)) != 0 {
		t.Error("Build(nil) should produce no frames")
	}
}

func TestLoop(t *testing.T) {
	l, err := Loop(kochBlueprint(2, 1), Options{}, 2)
	if err != nil {
		t.Fatalf("Loop() error: %v", err)
	}
	got := slices.Collect(l.All())
	want := []string{
		"Generation 0", "Generation 1", "Generation 1",
		"Generation 0", "Generation 1", "Generation 1",
	}
	if !slices.Equal(labels(got), want) {
		t.Errorf("labels = %q, want %q", labels(got), want)
	}
}

func TestLoopInvalidBlueprint(t *testing.T) {
	b := kochBlueprint(2, 0)
	b.Name = ""
	if _, err := Loop(b, Options{}, 1); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("Loop() error = %v, want %s", err, errors.ErrCodeInvalidName)
	}
}

func TestFit(t *testing.T) {
	segs := []turtle.Segment{
		{Start: turtle.Vec{-1, 3}, End: turtle.Vec{1, 3}},
		{Start: turtle.Vec{1, 3}, End: turtle.Vec{1, 4}},
	}

	tests := []struct {
		aspect [2]float64
		end    turtle.Vec
	}{
		{[2]float64{1, 1}, turtle.Vec{1, 0.5}},
		{[2]float64{4, 1}, turtle.Vec{2, 1}},
		{[2]float64{1, 4}, turtle.Vec{1, 0.5}},
	}
	for _, tt := range tests {
		got := Fit(segs, tt.aspect)
		if !got[0].Start.ApproxEqual(turtle.Vec{0, 0}, 1e-12) {
			t.Errorf("Fit(%v) first start = %v, want origin", tt.aspect, got[0].Start)
		}
		if !got[1].End.ApproxEqual(tt.end, 1e-12) {
			t.Errorf("Fit(%v) last end = %v, want %v", tt.aspect, got[1].End, tt.end)
		}
	}

	if segs[0].Start[0] != -1 {
		t.Error("Fit() modified its input")
	}
}

func TestFitDegenerate(t *testing.T) {
	got := Fit([]turtle.Segment{{Start: turtle.Vec{2, 2}, End: turtle.Vec{2, 2}}}, [2]float64{1, 1})
	if !got[0].Start.Equal(turtle.Vec{0, 0}) || !got[0].End.Equal(turtle.Vec{0, 0}) {
		t.Errorf("Fit(point) = %v", got)
	}

	line := Fit([]turtle.Segment{{Start: turtle.Vec{0, 5}, End: turtle.Vec{4, 5}}}, [2]float64{2, 1})
	if !line[0].End.ApproxEqual(turtle.Vec{2, 0}, 1e-12) {
		t.Errorf("Fit(horizontal line) end = %v, want [2 0]", line[0].End)
	}

	if Fit(nil, [2]float64{1, 1}) != nil {
		t.Error("Fit(nil) should be nil")
	}
}
