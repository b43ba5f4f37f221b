// Package frames turns a blueprint's generations into labelled frames of line
// segments, ready for a sink.
//
// One pass yields "Generation 0" through "Generation N-1", then repeats the
// last generation Hold more times so animations linger on the finished
// shape. [Loop] replays passes from the axiom.
package frames

import (
	"fmt"
	"iter"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/lsystem"
	"github.com/matzehuels/linden/pkg/turtle"
)

// Frame is one generation's geometry.
type Frame struct {
	// Index is the generation number within its pass.
	Index int `json:"index"`

	// Label is the caption "Generation N".
	Label string `json:"label"`

	// Text is the generation string.
	Text string `json:"text,omitempty"`

	Segments []turtle.Segment `json:"segments"`

	// Repeat counts how many times this frame has already been shown.
	// It is zero except for held copies of the last generation.
	Repeat int `json:"repeat,omitempty"`
}

// Label returns the caption for generation i.
func Label(i int) string {
	return fmt.Sprintf("Generation %d", i)
}

// Options configures a [Producer].
type Options struct {
	// MaxLength caps the generation string length. Zero means no cap.
	MaxLength int

	// Source overrides the blueprint's seeded random source.
	Source lsystem.Source
}

// Producer yields the frames of one pass over a blueprint.
type Producer struct {
	seq    *lsystem.Sequence
	interp *turtle.Interpreter
	hold   int
}

// Produce validates bp and prepares a single pass over its generations.
func Produce(bp *blueprint.Blueprint, opts Options) (*Producer, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	src := opts.Source
	if src == nil {
		src = bp.Source()
	}
	seq, err := bp.Sequence(src, lsystem.WithMaxLength(opts.MaxLength))
	if err != nil {
		return nil, err
	}
	interp, err := bp.Interpreter()
	if err != nil {
		return nil, err
	}
	return &Producer{seq: seq, interp: interp, hold: bp.Hold}, nil
}

// Frames yields each generation as a frame, then Hold copies of the last
// one. If the pass ends early because of the length cap, no copies are held
// and [Producer.Err] reports why.
func (p *Producer) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		var last Frame
		seen := false
		for i, text := range p.seq.All() {
			last = Frame{Index: i, Label: Label(i), Text: text, Segments: p.interp.Interpret(text)}
			seen = true
			if !yield(last) {
				return
			}
		}
		if !seen || p.seq.Err() != nil {
			return
		}
		for r := 1; r <= p.hold; r++ {
			held := last
			held.Repeat = r
			if !yield(held) {
				return
			}
		}
	}
}

// Err reports the error that cut the last pass short, if any.
func (p *Producer) Err() error {
	return p.seq.Err()
}

// Build interprets already generated strings into frames, holding the last
// one hold extra times.
func Build(texts []string, interp *turtle.Interpreter, hold int) []Frame {
	out := make([]Frame, 0, len(texts)+max(hold, 0))
	for i, text := range texts {
		out = append(out, Frame{Index: i, Label: Label(i), Text: text, Segments: interp.Interpret(text)})
	}
	if len(out) == 0 {
		return out
	}
	last := out[len(out)-1]
	for r := 1; r <= hold; r++ {
		held := last
		held.Repeat = r
		out = append(out, held)
	}
	return out
}

// Loop replays passes over bp from the axiom, drawing every pass from one
// random source so later passes differ. maxLoops of zero loops forever.
func Loop(bp *blueprint.Blueprint, opts Options, maxLoops int) (*lsystem.Looper[Frame], error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if opts.Source == nil {
		opts.Source = bp.Source()
	}
	factory := func() iter.Seq[Frame] {
		p, err := Produce(bp, opts)
		if err != nil {
			return func(func(Frame) bool) {}
		}
		return p.Frames()
	}
	return lsystem.NewLooper(factory, maxLoops)
}
