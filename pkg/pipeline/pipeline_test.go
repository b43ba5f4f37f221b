package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/cache"
	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/observability"
	"github.com/matzehuels/linden/pkg/presets"
	"github.com/matzehuels/linden/pkg/render/sink"
)

func testBlueprint() *blueprint.Blueprint {
	bp := &blueprint.Blueprint{
		Name:         "koch-test",
		Rules:        presets.KochCurve(),
		Instructions: presets.Quarter2D(),
		Generations:  3,
		Hold:         1,
	}
	bp.SetDefaults()
	return bp
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, nil)
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("size = %gx%g", o.Width, o.Height)
	}
	if o.MaxLength != DefaultMaxLength {
		t.Errorf("MaxLength = %d", o.MaxLength)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	bad := Options{Width: -1}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("negative width should fail")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Width: 100, Height: 50}
	a := o.ArtifactKeyOpts(FormatSVG, 2)
	if a.Width != 100 || a.Height != 50 || a.Frame != 2 {
		t.Errorf("svg key opts = %+v", a)
	}
	j := o.ArtifactKeyOpts(FormatJSON, -1)
	if j.Width != 0 || j.Frame != -1 {
		t.Errorf("json key opts should ignore size: %+v", j)
	}
}

func TestGenerate(t *testing.T) {
	texts, err := Generate(context.Background(), testBlueprint(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "F", "F+F-F-FF+F+F-F"}
	if len(texts) != len(want) {
		t.Fatalf("Generate() = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("generation %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	defer r.Close()

	res, err := r.Execute(ctx, testBlueprint(), Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.RunID == "" || len(res.BlueprintHash) != 64 {
		t.Errorf("RunID = %q, BlueprintHash = %q", res.RunID, res.BlueprintHash)
	}
	if len(res.Generations) != 3 {
		t.Errorf("generations = %d, want 3", len(res.Generations))
	}
	// three generations plus one held copy
	if len(res.Frames) != 4 || len(res.SVG) != 4 {
		t.Fatalf("frames = %d, svg = %d, want 4", len(res.Frames), len(res.SVG))
	}
	if res.Frames[3].Repeat != 1 {
		t.Errorf("last frame Repeat = %d, want 1", res.Frames[3].Repeat)
	}
	if res.Stats.Segments != 8 {
		t.Errorf("segments = %d, want 8", res.Stats.Segments)
	}
	if res.CacheInfo.GenerateHit || res.CacheInfo.RenderHit {
		t.Errorf("first run should miss the cache: %+v", res.CacheInfo)
	}

	var doc sink.Document
	if err := json.Unmarshal(res.JSON, &doc); err != nil {
		t.Fatalf("JSON artifact: %v", err)
	}
	if doc.Blueprint == nil || doc.Blueprint.Name != "koch-test" || len(doc.Frames) != 4 {
		t.Errorf("JSON document = %+v", doc)
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, testBlueprint(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(ctx, testBlueprint(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if first.RunID == second.RunID {
		t.Error("each run should get its own ID")
	}
	for i := range first.SVG {
		if !bytes.Equal(first.SVG[i], second.SVG[i]) {
			t.Errorf("cached svg %d differs", i)
		}
	}
	if !bytes.Equal(first.JSON, second.JSON) {
		t.Error("cached json differs")
	}

	refreshed, err := r.Execute(ctx, testBlueprint(), Options{Formats: opts.Formats, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.GenerateHit || refreshed.CacheInfo.RenderHit {
		t.Errorf("Refresh should skip the cache: %+v", refreshed.CacheInfo)
	}

	// A different seed is a different blueprint.
	other := testBlueprint()
	other.Seed = 7
	res, err := r.Execute(ctx, other, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.GenerateHit {
		t.Error("changing the seed should change the cache key")
	}
}

func TestExecuteErrors(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	_, err := r.Execute(ctx, testBlueprint(), Options{MaxLength: 5})
	if !errors.Is(err, errors.ErrCodeLengthExceeded) {
		t.Errorf("length cap: err = %v, want LENGTH_EXCEEDED", err)
	}

	bad := testBlueprint()
	bad.Name = ""
	if _, err := r.Execute(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("invalid blueprint: err = %v", err)
	}

	if _, err := r.Execute(ctx, testBlueprint(), Options{Formats: []string{"gif"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid format: err = %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.Execute(cancelled, testBlueprint(), Options{}); !stderrors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: err = %v", err)
	}
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (c *countingCacheHooks) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingCacheHooks) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingCacheHooks) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestExecuteCacheHooks(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	r := testRunner(t)
	opts := Options{Formats: []string{FormatJSON}}
	if _, err := r.Execute(ctx, testBlueprint(), opts); err != nil {
		t.Fatal(err)
	}
	if hooks.misses != 2 || hooks.sets != 2 {
		t.Errorf("first run: misses = %d, sets = %d, want 2 and 2", hooks.misses, hooks.sets)
	}
	if _, err := r.Execute(ctx, testBlueprint(), opts); err != nil {
		t.Fatal(err)
	}
	if hooks.hits != 2 {
		t.Errorf("second run: hits = %d, want 2", hooks.hits)
	}
}
