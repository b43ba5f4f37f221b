package pipeline

import (
	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/frames"
	"github.com/matzehuels/linden/pkg/render/sink"
)

// RenderSVG renders each frame as its own SVG document.
func RenderSVG(all []frames.Frame, opts Options) [][]byte {
	svgOpts := []sink.SVGOption{sink.WithSize(opts.Width, opts.Height)}
	if opts.Stroke != "" || opts.StrokeWidth > 0 {
		stroke, width := opts.Stroke, opts.StrokeWidth
		if stroke == "" {
			stroke = "#1b1b1b"
		}
		if width <= 0 {
			width = 1
		}
		svgOpts = append(svgOpts, sink.WithStroke(stroke, width))
	}

	out := make([][]byte, len(all))
	for i, f := range all {
		out[i] = sink.RenderSVG(f, svgOpts...)
	}
	return out
}

// RenderJSON renders all frames, fitted into the blueprint's aspect box, as
// one JSON document that embeds the blueprint.
func RenderJSON(bp *blueprint.Blueprint, all []frames.Frame, opts Options) ([]byte, error) {
	jsonOpts := []sink.JSONOption{sink.WithBlueprint(bp), sink.WithFit(bp.AspectRatio)}
	if opts.Text {
		jsonOpts = append(jsonOpts, sink.WithText())
	}
	return sink.RenderJSON(all, jsonOpts...)
}
