package lsystem

import (
	"iter"
	"slices"
	"testing"

	"github.com/matzehuels/linden/pkg/errors"
)

func collect(s *Sequence) []string {
	return slices.Collect(s.Strings())
}

func TestSequenceBounded(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	seq := NewSequence(g, "", NewSource(1), WithLimit(3))

	got := collect(seq)
	want := []string{"", "F", kochElaboration}
	if !slices.Equal(got, want) {
		t.Errorf("Sequence = %q, want %q", got, want)
	}
	if err := seq.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestSequenceIndices(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	seq := NewSequence(g, "", NewSource(1), WithLimit(4))

	var indices []int
	for i := range seq.All() {
		indices = append(indices, i)
	}
	if !slices.Equal(indices, []int{0, 1, 2, 3}) {
		t.Errorf("indices = %v, want [0 1 2 3]", indices)
	}
}

func TestSequenceZeroLimit(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	if got := collect(NewSequence(g, "F", NewSource(1), WithLimit(0))); len(got) != 0 {
		t.Errorf("Sequence with limit 0 = %q, want empty", got)
	}
}

func TestSequenceStep(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	got := collect(NewSequence(g, "", NewSource(1), WithLimit(2), WithStep(2)))
	want := []string{"", kochElaboration}
	if !slices.Equal(got, want) {
		t.Errorf("Sequence = %q, want %q", got, want)
	}
}

func TestSequenceUnbounded(t *testing.T) {
	g := mustCompile(t, MustRule("grow", "A", []Successor{{Threshold: 1, Replacement: "AB"}}))
	seq := NewSequence(g, "A", NewSource(1))

	var got []string
	for _, s := range seq.All() {
		got = append(got, s)
		if len(got) == 5 {
			break
		}
	}
	want := []string{"A", "AB", "ABB", "ABBB", "ABBBB"}
	if !slices.Equal(got, want) {
		t.Errorf("Sequence = %q, want %q", got, want)
	}
}

func TestSequenceMaxLength(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	seq := NewSequence(g, "", NewSource(1), WithLimit(5), WithMaxLength(5))

	got := collect(seq)
	if !slices.Equal(got, []string{"", "F"}) {
		t.Errorf("Sequence = %q, want [\"\" \"F\"]", got)
	}
	if !errors.Is(seq.Err(), errors.ErrCodeLengthExceeded) {
		t.Errorf("Err() = %v, want %s", seq.Err(), errors.ErrCodeLengthExceeded)
	}

	// A fresh iteration clears the previous error.
	seq = NewSequence(g, "", NewSource(1), WithLimit(2), WithMaxLength(5))
	collect(seq)
	if seq.Err() != nil {
		t.Errorf("Err() = %v, want nil", seq.Err())
	}
}

func TestLooper(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	src := NewSource(1)
	factory := func() iter.Seq[string] {
		return NewSequence(g, "", src, WithLimit(2)).Strings()
	}

	l, err := NewLooper(factory, 3)
	if err != nil {
		t.Fatalf("NewLooper() error: %v", err)
	}
	got := slices.Collect(l.All())
	want := []string{"", "F", "", "F", "", "F"}
	if !slices.Equal(got, want) {
		t.Errorf("Looper = %q, want %q", got, want)
	}
}

func TestLooperForever(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	factory := func() iter.Seq[string] {
		return NewSequence(g, "", NewSource(1), WithLimit(2)).Strings()
	}
	l, err := NewLooper(factory, 0)
	if err != nil {
		t.Fatalf("NewLooper() error: %v", err)
	}

	n := 0
	for range l.All() {
		n++
		if n == 11 {
			break
		}
	}
	if n != 11 {
		t.Errorf("Looper yielded %d values before break, want 11", n)
	}
}

func TestLooperEmptySequence(t *testing.T) {
	g := mustCompile(t, kochRules()...)
	factory := func() iter.Seq[string] {
		return NewSequence(g, "", NewSource(1), WithLimit(0)).Strings()
	}
	_, err := NewLooper(factory, 2)
	if !errors.Is(err, errors.ErrCodeEmptySequence) {
		t.Errorf("NewLooper() error = %v, want %s", err, errors.ErrCodeEmptySequence)
	}
}
