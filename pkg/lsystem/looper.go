package lsystem

import (
	"iter"

	"github.com/matzehuels/linden/pkg/errors"
)

// Looper replays a finite sequence from the start each time it runs out.
type Looper[T any] struct {
	factory  func() iter.Seq[T]
	maxLoops int
}

// NewLooper validates factory by pulling one value from a fresh sequence and
// returns an EMPTY_SEQUENCE error if there is none. maxLoops bounds the
// number of passes; zero or less loops forever.
func NewLooper[T any](factory func() iter.Seq[T], maxLoops int) (*Looper[T], error) {
	next, stop := iter.Pull(factory())
	_, ok := next()
	stop()
	if !ok {
		return nil, errors.New(errors.ErrCodeEmptySequence, "sequence generates nothing")
	}
	return &Looper[T]{factory: factory, maxLoops: maxLoops}, nil
}

// All yields every value of each pass in turn. A pass that yields nothing
// ends the iteration.
func (l *Looper[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pass := 0; l.maxLoops <= 0 || pass < l.maxLoops; pass++ {
			produced := false
			for v := range l.factory() {
				produced = true
				if !yield(v) {
					return
				}
			}
			if !produced {
				return
			}
		}
	}
}
