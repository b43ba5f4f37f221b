package lsystem

import "math/rand/v2"

// Source supplies uniform random draws in [0,1) for successor selection.
//
// Implementations are not required to be safe for concurrent use; use one
// Source per rewriting run.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source. The same seed always produces the
// same sequence of draws.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// FixedSource replays a fixed list of draws, cycling back to the start when
// the list is exhausted. An empty FixedSource always returns 0.
type FixedSource struct {
	values []float64
	next   int
}

// NewFixedSource returns a Source that yields values in order.
func NewFixedSource(values ...float64) *FixedSource {
	return &FixedSource{values: values}
}

// Float64 returns the next value.
func (s *FixedSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws reports how many values have been taken so far.
func (s *FixedSource) Draws() int {
	return s.next
}
