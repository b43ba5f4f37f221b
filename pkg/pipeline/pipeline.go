// Package pipeline runs a blueprint through generate → interpret → render,
// caching generation strings and artifacts between runs.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: rewrite the axiom for each generation of one pass
//  2. Interpret: turn each generation into line segments (frames)
//  3. Render: encode frames as SVG (one document per frame) or JSON
//
// Rewriting is deterministic for a fixed seed, so the generations of a
// blueprint are cached under a hash of the blueprint itself.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, bp, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, svg := range result.SVG {
//	    os.WriteFile(fmt.Sprintf("frame-%03d.svg", i), svg, 0o644)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linden/pkg/cache"
	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/frames"
)

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 800.0

	// DefaultMaxLength caps generation strings, in runes.
	DefaultMaxLength = 2_000_000
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options configures a pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`

	// Stroke and StrokeWidth style SVG output.
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`

	// Text keeps generation strings in JSON output.
	Text bool `json:"text,omitempty"`

	// MaxLength caps generation strings; zero uses DefaultMaxLength.
	MaxLength int `json:"max_length,omitempty"`

	// Refresh skips cache lookups but still writes results.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// BlueprintHash is the content hash used for cache keys.
	BlueprintHash string

	// Generations are the strings of one pass, axiom first.
	Generations []string

	// Frames are the interpreted generations, held copies included.
	Frames []frames.Frame

	// SVG holds one document per frame when FormatSVG was requested.
	SVG [][]byte

	// JSON holds the document for all frames when FormatJSON was requested.
	JSON []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Generations   int
	Length        int // runes in the last generation
	Segments      int // segments in the last frame
	GenerateTime  time.Duration
	InterpretTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether generations came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and checks the options.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size must be positive, got %gx%g", o.Width, o.Height)
	}
	if o.MaxLength < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max length cannot be negative, got %d", o.MaxLength)
	}
	return ValidateFormats(o.Formats)
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// GenerationsKeyOpts returns cache key options for generation strings.
func (o *Options) GenerationsKeyOpts() cache.GenerationsKeyOpts {
	return cache.GenerationsKeyOpts{MaxLength: o.MaxLength}
}

// ArtifactKeyOpts returns cache key options for one artifact. JSON output
// covers every frame and uses frame -1.
func (o *Options) ArtifactKeyOpts(format string, frame int) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Frame: frame}
	switch format {
	case FormatSVG:
		opts.Width, opts.Height = int(o.Width), int(o.Height)
		opts.Style = fmt.Sprintf("%s/%g", o.Stroke, o.StrokeWidth)
	case FormatJSON:
		if o.Text {
			opts.Style = "text"
		}
	}
	return opts
}
