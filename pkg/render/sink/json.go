package sink

import (
	"encoding/json"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/frames"
)

type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	blueprint *blueprint.Blueprint
	text      bool
	fit       *[2]float64
}

func WithBlueprint(bp *blueprint.Blueprint) JSONOption {
	return func(r *jsonRenderer) { r.blueprint = bp }
}
func WithText() JSONOption { return func(r *jsonRenderer) { r.text = true } }

// WithFit normalises every frame's segments into the aspect box with
// [frames.Fit].
func WithFit(aspect [2]float64) JSONOption {
	return func(r *jsonRenderer) { r.fit = &aspect }
}

// Document is the JSON output of [RenderJSON].
type Document struct {
	Blueprint *blueprint.Blueprint `json:"blueprint,omitempty"`
	Frames    []frames.Frame       `json:"frames"`
}

// RenderJSON encodes frames as an indented JSON [Document].
func RenderJSON(all []frames.Frame, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	doc := Document{Blueprint: r.blueprint, Frames: make([]frames.Frame, len(all))}
	for i, f := range all {
		if !r.text {
			f.Text = ""
		}
		if r.fit != nil {
			f.Segments = frames.Fit(f.Segments, *r.fit)
		}
		doc.Frames[i] = f
	}
	return json.MarshalIndent(doc, "", "  ")
}
