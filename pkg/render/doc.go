// Package render groups the output stages that turn frames and grammars into
// files.
//
// # Overview
//
//   - Frame sinks (in [sink]): SVG polylines for a single frame and a JSON
//     document for a whole run
//   - Rule graphs (in [rulegraph]): Graphviz diagrams showing which rules feed
//     which
//
// # Frame Sinks
//
// A frame is fitted into the drawing area, flipped so y points up, and drawn
// as connected polylines. 3D frames are projected onto their first two axes.
//
//	svg := sink.RenderSVG(frame, sink.WithSize(800, 800))
//	doc, err := sink.RenderJSON(all, sink.WithBlueprint(bp))
//
// # Rule Graphs
//
// A rule graph has a node per rule and an edge A -> B when some successor of
// A contains text matched by B's predecessor.
//
//	dot := rulegraph.ToDOT(rules, rulegraph.Options{})
//	svg, err := rulegraph.RenderSVG(dot)
//
// [sink]: github.com/matzehuels/linden/pkg/render/sink
// [rulegraph]: github.com/matzehuels/linden/pkg/render/rulegraph
package render
