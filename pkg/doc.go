// Package pkg provides the libraries behind linden, a stochastic L-system
// generator and renderer.
//
// # Overview
//
// An L-system rewrites a string over and over with grammar rules, then reads
// each generation as drawing instructions for a turtle. linden's rules are
// regular expressions with weighted random successors, so every pass over a
// blueprint can grow differently. The pkg directory is organized into:
//
//  1. [lsystem] - Rules, grammars, the rewriter, sequences and loopers
//  2. [turtle] - Instruction tables and the stack-based interpreter
//  3. [blueprint] - A complete, serializable system description
//  4. [frames] - Generations interpreted into labelled frames
//  5. [render] - SVG and JSON frame sinks plus rule graphs
//  6. [pipeline] - Orchestration (generate → interpret → render) with caching
//
// # Architecture
//
// The typical data flow through linden:
//
//	Blueprint (file or preset)
//	         ↓
//	    [lsystem] package (rewrite generations)
//	         ↓
//	    [turtle] package (interpret into segments)
//	         ↓
//	    [frames] package (label, hold, fit)
//	         ↓
//	    SVG/JSON output
//
// # Quick Start
//
// Grow a preset and render its last frame:
//
//	import (
//	    "github.com/matzehuels/linden/pkg/frames"
//	    "github.com/matzehuels/linden/pkg/presets"
//	    "github.com/matzehuels/linden/pkg/render/sink"
//	)
//
//	bp, _ := presets.Get("plant")
//	p, _ := frames.Produce(bp, frames.Options{MaxLength: 1_000_000})
//
//	var last frames.Frame
//	for f := range p.Frames() {
//	    last = f
//	}
//	svg := sink.RenderSVG(last, sink.WithSize(800, 800))
//
// # Main Packages
//
// ## Grammar and Drawing
//
//   - [lsystem]: Regex rules with cumulative-threshold successors, the
//     protection-masked rewriter, fixed-point sequences, and loopers
//   - [turtle]: Instruction tables with eight stack flags, 2D and 3D vectors,
//     and the interpreter that turns a string into line segments
//   - [presets]: Built-in rule sets, instruction tables, and blueprints
//
// ## Orchestration
//
//   - [blueprint]: JSON, TOML, and YAML codecs plus validation
//   - [frames]: Frame production, hold frames, and aspect fitting
//   - [pipeline]: Cached generation and rendering for the CLI
//
// ## Infrastructure
//
//   - [cache]: File, Redis, and null caches keyed by blueprint hash
//   - [observability]: Pipeline and cache hooks with a Prometheus
//     implementation
//   - [errors]: Coded errors shared by every package
//   - [buildinfo]: Version information set at link time
//
// [lsystem]: github.com/matzehuels/linden/pkg/lsystem
// [turtle]: github.com/matzehuels/linden/pkg/turtle
// [blueprint]: github.com/matzehuels/linden/pkg/blueprint
// [frames]: github.com/matzehuels/linden/pkg/frames
// [render]: github.com/matzehuels/linden/pkg/render
// [pipeline]: github.com/matzehuels/linden/pkg/pipeline
// [presets]: github.com/matzehuels/linden/pkg/presets
// [cache]: github.com/matzehuels/linden/pkg/cache
// [observability]: github.com/matzehuels/linden/pkg/observability
// [errors]: github.com/matzehuels/linden/pkg/errors
// [buildinfo]: github.com/matzehuels/linden/pkg/buildinfo
package pkg
