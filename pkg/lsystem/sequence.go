package lsystem

import (
	"iter"
	"unicode/utf8"

	"github.com/matzehuels/linden/pkg/errors"
)

// Sequence yields the axiom followed by successive rewrites of it.
//
// A Sequence is unbounded unless [WithLimit] is given. Iterating it again
// starts over from the axiom but keeps drawing from the same [Source].
type Sequence struct {
	grammar   *Grammar
	axiom     string
	src       Source
	limit     int
	bounded   bool
	step      int
	maxLength int
	err       error
}

// SequenceOption configures a [Sequence].
type SequenceOption func(*Sequence)

// WithLimit bounds the sequence to n yields (generation 0 included).
func WithLimit(n int) SequenceOption {
	return func(s *Sequence) {
		s.limit = max(n, 0)
		s.bounded = true
	}
}

// WithStep rewrites k generations between consecutive yields. The default is 1.
func WithStep(k int) SequenceOption {
	return func(s *Sequence) {
		if k > 0 {
			s.step = k
		}
	}
}

// WithMaxLength ends the sequence with a LENGTH_EXCEEDED error, reported by
// [Sequence.Err], before yielding a string longer than n characters.
// Zero disables the check.
func WithMaxLength(n int) SequenceOption {
	return func(s *Sequence) { s.maxLength = max(n, 0) }
}

// NewSequence returns a sequence over g starting at axiom.
func NewSequence(g *Grammar, axiom string, src Source, opts ...SequenceOption) *Sequence {
	s := &Sequence{grammar: g, axiom: axiom, src: src, step: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All yields (index, generation) pairs. Index 0 is the axiom; index i is the
// axiom rewritten i times the configured step.
func (s *Sequence) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		s.err = nil
		text := s.axiom
		for i := 0; !s.bounded || i < s.limit; i++ {
			if n := utf8.RuneCountInString(text); s.maxLength > 0 && n > s.maxLength {
				s.err = errors.New(errors.ErrCodeLengthExceeded,
					"generation %d has %d characters, limit is %d", i, n, s.maxLength)
				return
			}
			if !yield(i, text) {
				return
			}
			if s.bounded && i+1 >= s.limit {
				return
			}
			text = s.grammar.Rewrite(text, s.step, s.src)
		}
	}
}

// Strings yields the generations without their indices.
func (s *Sequence) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, text := range s.All() {
			if !yield(text) {
				return
			}
		}
	}
}

// Err returns the error that ended the most recent iteration early, if any.
func (s *Sequence) Err() error {
	return s.err
}
