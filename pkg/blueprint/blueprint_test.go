package blueprint

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/lsystem"
	"github.com/matzehuels/linden/pkg/turtle"
)

func sample() *Blueprint {
	b := &Blueprint{
		Name: "Sample Plant",
		Rules: []lsystem.Rule{
			lsystem.MustRule("Growing", `F`, []lsystem.Successor{
				{Threshold: 0.3, Replacement: "FFF"},
				{Threshold: 1, Replacement: "FF"},
			}),
			lsystem.MustRule("Branching", `(X)`, []lsystem.Successor{
				{Threshold: 0.5, Replacement: `F[+\1][-\1]`},
				{Threshold: 0.9, Replacement: `F[-\1]F[+\1]`},
			}, lsystem.WithProtected(false)),
		},
		Instructions: turtle.Table{
			"F": {Draw: true, Movement: 1},
			"+": {Rotation: turtle.Rotation2D(math.Pi / 8)},
			"-": {Rotation: turtle.Rotation2D(2*math.Pi - math.Pi/8)},
			"[": {Stack: turtle.Push},
			"]": {Stack: turtle.Pop},
		},
		Axiom:       "[+X][X][-X]",
		Generations: 5,
		Start:       turtle.Vec{0.5, 0},
		Facing:      turtle.Vec{0, 1},
		Hold:        2,
		Seed:        1<<60 + 7,
	}
	b.SetDefaults()
	return b
}

func generations(t *testing.T, b *Blueprint) []string {
	t.Helper()
	seq, err := b.Sequence(b.Source())
	if err != nil {
		t.Fatalf("Sequence() error: %v", err)
	}
	return slices.Collect(seq.Strings())
}

func TestSetDefaults(t *testing.T) {
	b := &Blueprint{Name: "bare"}
	b.SetDefaults()

	if b.Generations != DefaultGenerations || b.Step != 1 || b.Dimensions != 2 {
		t.Errorf("SetDefaults() generations=%d step=%d dims=%d", b.Generations, b.Step, b.Dimensions)
	}
	if !b.Start.Equal(turtle.Vec{0, 0}) || !b.Facing.Equal(turtle.Vec{1, 0}) {
		t.Errorf("SetDefaults() start=%v facing=%v", b.Start, b.Facing)
	}
	if b.AspectRatio != [2]float64{1, 1} {
		t.Errorf("SetDefaults() aspect=%v", b.AspectRatio)
	}
	if b.Seed != DefaultSeed {
		t.Errorf("SetDefaults() seed=%d, want %d", b.Seed, DefaultSeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Blueprint)
		code   errors.Code
		names  string
	}{
		{"empty name", func(b *Blueprint) { b.Name = "" }, errors.ErrCodeInvalidName, ""},
		{"zero generations", func(b *Blueprint) { b.Generations = 0 }, errors.ErrCodeInvalidBlueprint, ""},
		{"negative hold", func(b *Blueprint) { b.Hold = -1 }, errors.ErrCodeInvalidBlueprint, ""},
		{"bad aspect", func(b *Blueprint) { b.AspectRatio = [2]float64{1, 0} }, errors.ErrCodeInvalidBlueprint, ""},
		{"seed too large", func(b *Blueprint) { b.Seed = 1<<63 + 5 }, errors.ErrCodeInvalidBlueprint, ""},
		{"bad rule", func(b *Blueprint) { b.Rules[1].Predecessor = "(X" }, errors.ErrCodeInvalidRule, "Branching"},
		{"bad threshold", func(b *Blueprint) { b.Rules[0].Successors[0].Threshold = 2 }, errors.ErrCodeInvalidRule, "Growing"},
		{"bad symbol", func(b *Blueprint) { b.Instructions["FF"] = turtle.Instruction{} }, errors.ErrCodeInvalidInstruction, "FF"},
		{"bad dims", func(b *Blueprint) { b.Dimensions = 4 }, errors.ErrCodeInvalidDimensions, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sample()
			tt.mutate(b)
			err := b.Validate()
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() error = %v, want code %s", err, tt.code)
			}
			if tt.names != "" && !strings.Contains(err.Error(), tt.names) {
				t.Errorf("Validate() error %q does not name %q", err, tt.names)
			}
		})
	}

	if err := sample().Validate(); err != nil {
		t.Errorf("Validate() on sample: %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	want := generations(t, sample())
	dir := t.TempDir()

	for _, ext := range []string{".json", ".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "plant"+ext)
			if err := Save(sample(), path); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			if loaded.Name != "Sample Plant" || loaded.Seed != 1<<60+7 || loaded.Hold != 2 {
				t.Errorf("Load() name=%q seed=%d hold=%d", loaded.Name, loaded.Seed, loaded.Hold)
			}
			if loaded.Rules[1].Protected || !loaded.Rules[1].Enabled {
				t.Errorf("Load() lost rule flags: %+v", loaded.Rules[1])
			}
			if got := generations(t, loaded); !slices.Equal(got, want) {
				t.Errorf("generations after %s round trip differ:\n got %q\nwant %q", ext, got, want)
			}
		})
	}
}

func TestSeedLimit(t *testing.T) {
	dir := t.TempDir()

	b := sample()
	b.Seed = MaxSeed
	path := filepath.Join(dir, "max.toml")
	if err := Save(b, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Seed != MaxSeed {
		t.Errorf("Load() seed = %d, want %d", loaded.Seed, uint64(MaxSeed))
	}

	b.Seed = MaxSeed + 1
	path = filepath.Join(dir, "over.toml")
	if err := Save(b, path); !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
		t.Errorf("Save() error = %v, want code %s", err, errors.ErrCodeInvalidBlueprint)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Save() wrote %s despite the error", path)
	}
}

func TestMapRoundTrip(t *testing.T) {
	want := generations(t, sample())

	m, err := ToMap(sample())
	if err != nil {
		t.Fatalf("ToMap() error: %v", err)
	}
	if _, ok := m["rules"].([]any); !ok {
		t.Errorf("ToMap() rules = %T, want []any", m["rules"])
	}
	if _, ok := m["instructions"].(map[string]any); !ok {
		t.Errorf("ToMap() instructions = %T, want map[string]any", m["instructions"])
	}

	b, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() error: %v", err)
	}
	if b.Seed != 1<<60+7 {
		t.Errorf("FromMap() seed = %d, want %d", b.Seed, uint64(1<<60+7))
	}
	if got := generations(t, b); !slices.Equal(got, want) {
		t.Errorf("generations after map round trip differ:\n got %q\nwant %q", got, want)
	}
}

func TestFromMapPlainValues(t *testing.T) {
	m := map[string]any{
		"name":  "koch",
		"axiom": "F",
		"rules": []any{
			map[string]any{
				"name":        "Elaboration",
				"enabled":     true,
				"protected":   true,
				"predecessor": "F",
				"successors":  []any{map[string]any{"threshold": 1, "replacement": "F+F-F-FF+F+F-F"}},
			},
		},
		"instructions": map[string]any{
			"F": map[string]any{"draw": true, "movement": 1.0},
			"+": map[string]any{"rotation": []any{[]any{0, -1}, []any{1, 0}}},
		},
		"generations": 3,
		"seed":        7,
	}
	b, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() error: %v", err)
	}
	got := generations(t, b)
	if len(got) != 3 || got[1] != "F+F-F-FF+F+F-F" {
		t.Errorf("generations = %q", got)
	}
}

func TestFromMapUnknownKey(t *testing.T) {
	m, err := ToMap(sample())
	if err != nil {
		t.Fatalf("ToMap() error: %v", err)
	}
	m["colour"] = "green"
	if _, err := FromMap(m); !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
		t.Errorf("FromMap() error = %v, want %s", err, errors.ErrCodeInvalidBlueprint)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.json", FormatJSON, true},
		{"dir/a.TOML", FormatTOML, true},
		{"a.yml", FormatYAML, true},
		{"a.yaml", FormatYAML, true},
		{"a.txt", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "x", "bogus": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
		t.Errorf("Load(unknown field) error = %v, want %s", err, errors.ErrCodeInvalidBlueprint)
	}

	badToml := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badToml, []byte("name = \"x\"\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badToml); !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
		t.Errorf("Load(unknown toml key) error = %v, want %s", err, errors.ErrCodeInvalidBlueprint)
	}
}

func TestExampleFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example blueprints found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			b, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			b.SetDefaults()
			if err := b.Validate(); err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			seq, err := b.Sequence(b.Source())
			if err != nil {
				t.Fatal(err)
			}
			n := 0
			for range seq.All() {
				n++
			}
			if n != b.Generations {
				t.Errorf("generated %d strings, want %d", n, b.Generations)
			}
		})
	}
}

func TestSierpinskiProtection(t *testing.T) {
	b, err := Load(filepath.Join("..", "..", "examples", "sierpinski.toml"))
	if err != nil {
		t.Fatal(err)
	}
	b.Generations = 3
	seq, err := b.Sequence(b.Source())
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, text := range seq.All() {
		got = append(got, text)
	}
	want := []string{"A", "B-A-B", "A+B+A-B-A-B-A+B+A"}
	if !slices.Equal(got, want) {
		t.Errorf("generations = %q, want %q", got, want)
	}
}
