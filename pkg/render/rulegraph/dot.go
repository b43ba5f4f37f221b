// Package rulegraph draws how the rules of a grammar feed one another.
//
// Each rule becomes a node. An edge A -> B means that some successor of A
// contains text matched by B's predecessor, so applying A can create work for
// B in the next generation (or later in the same one, when A is unprotected).
// Disabled rules are dashed and protected rules are drawn with a bold border.
package rulegraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/linden/pkg/lsystem"
)

// Options configures rule graph rendering.
type Options struct {
	// Detailed adds the predecessor and successor count to node labels.
	Detailed bool
}

// Edge links a rule to a rule its output can trigger.
type Edge struct {
	From, To int
}

// Edges returns the feed relation between rules, by rule index.
func Edges(rules []lsystem.Rule) []Edge {
	var out []Edge
	for i, from := range rules {
		for j, to := range rules {
			for _, s := range from.Successors {
				if to.MatchString(s.Replacement) {
					out = append(out, Edge{From: i, To: j})
					break
				}
			}
		}
	}
	return out
}

// ToDOT converts rules to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(rules []lsystem.Rule, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, r := range rules {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(fmtAttrs(r, fmtLabel(i, r, opts.Detailed)), ", "))
	}

	buf.WriteString("\n")
	for _, e := range Edges(rules) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return "r" + strconv.Itoa(i)
}

func fmtLabel(i int, r lsystem.Rule, detailed bool) string {
	name := r.Name
	if name == "" {
		name = fmt.Sprintf("rule %d", i)
	}
	if !detailed {
		return name
	}
	return fmt.Sprintf("%s\n/%s/\nsuccessors: %d", name, r.Predecessor, len(r.Successors))
}

func fmtAttrs(r lsystem.Rule, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	style := "rounded,filled"
	if !r.Enabled {
		style += ",dashed"
		attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=grey30")
	}
	if r.Protected {
		style += ",bold"
	}
	return append(attrs, fmt.Sprintf("style=%q", style))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
