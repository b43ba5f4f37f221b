package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/linden/pkg/frames"
	"github.com/matzehuels/linden/pkg/turtle"
)

const (
	defaultWidth       = 800
	defaultHeight      = 800
	defaultStroke      = "#1b1b1b"
	defaultStrokeWidth = 1.0
	defaultBackground  = "white"
	labelHeight        = 28.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	margin        float64
	stroke        string
	strokeWidth   float64
	background    string
	label         bool
}

func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }
func WithStroke(color string, width float64) SVGOption {
	return func(r *svgRenderer) { r.stroke, r.strokeWidth = color, width }
}
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }
func WithoutLabel() SVGOption                { return func(r *svgRenderer) { r.label = false } }

// RenderSVG draws a single frame. The caption is the frame's label.
func RenderSVG(f frames.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{
		width:       defaultWidth,
		height:      defaultHeight,
		margin:      20,
		stroke:      defaultStroke,
		strokeWidth: defaultStrokeWidth,
		background:  defaultBackground,
		label:       true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	top := r.margin
	if r.label {
		top += labelHeight
	}
	boxW := max(r.width-2*r.margin, 1)
	boxH := max(r.height-top-r.margin, 1)

	fitted := frames.Fit(f.Segments, [2]float64{boxW, boxH})
	_, hi := turtle.Bounds(fitted)
	var offX, offY float64
	if hi != nil {
		offX = (boxW - hi[0]) / 2
		offY = (boxH - hi[1]) / 2
	}
	// Flip y so the turtle's +y points up the page.
	point := func(v turtle.Vec) (float64, float64) {
		return r.margin + offX + v[0], top + boxH - offY - v[1]
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	}
	if r.label {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="18" fill="%s">%s</text>`+"\n",
			r.margin, r.margin+18, html.EscapeString(r.stroke), html.EscapeString(f.Label))
	}
	fmt.Fprintf(&buf, `  <path fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round" d="`,
		html.EscapeString(r.stroke), r.strokeWidth)
	writePath(&buf, fitted, point)
	buf.WriteString(`"/>` + "\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writePath emits one subpath per run of segments that continue each other.
func writePath(buf *bytes.Buffer, segs []turtle.Segment, point func(turtle.Vec) (float64, float64)) {
	var prev turtle.Vec
	for i, s := range segs {
		if i == 0 || !s.Start.ApproxEqual(prev, 1e-9) {
			if i > 0 {
				buf.WriteByte(' ')
			}
			x, y := point(s.Start)
			fmt.Fprintf(buf, "M%.2f %.2f", x, y)
		}
		x, y := point(s.End)
		fmt.Fprintf(buf, " L%.2f %.2f", x, y)
		prev = s.End
	}
}
