// Package sink provides output format renderers for frames.
//
// # Overview
//
// A "sink" transforms computed [frames.Frame] values into a final output
// format. This package provides renderers for:
//
//   - SVG: one frame as stroked polylines with its generation caption
//   - JSON: every frame of a run, optionally with the blueprint that made it
//
// # SVG Output
//
// [RenderSVG] fits the frame into the drawing area with a margin, keeping its
// proportions, and joins segments that continue one another into a single
// polyline:
//
//	svg := sink.RenderSVG(frame,
//	    sink.WithSize(1024, 768),
//	    sink.WithStroke("#2e7d32", 1.5),
//	)
//
// # JSON Output
//
// [RenderJSON] writes an indented document. Generation strings are left out
// unless [WithText] is given since they grow quickly:
//
//	data, err := sink.RenderJSON(all, sink.WithBlueprint(bp), sink.WithText())
//
// [frames.Frame]: github.com/matzehuels/linden/pkg/frames.Frame
package sink
