// Package lsystem implements a stochastic, pattern-driven string rewriting
// grammar: an extended Lindenmayer system.
//
// # Overview
//
// A grammar is an ordered list of [Rule] values. Each rule pairs a regular
// expression (the predecessor) with a weighted list of replacement templates
// (the successors). One generation of rewriting applies every enabled rule in
// order to the whole string; matches produced by a protected rule are shielded
// from the rules that follow it in the same generation.
//
// Predecessors use Python-style regular expression syntax, including
// look-around assertions and named groups:
//
//	elaborate, _ := lsystem.NewRule("Elaboration", "F", []lsystem.Successor{
//	    {Threshold: 1, Replacement: "F+F-F-FF+F+F-F"},
//	})
//	g, _ := lsystem.Compile([]lsystem.Rule{elaborate})
//	out := g.Rewrite("F", 1, lsystem.NewSource(42))
//
// # Randomness
//
// Successor selection draws one value in [0,1) per processed match from a
// [Source]. [NewSource] returns a seeded PCG generator so a given seed always
// reproduces the same sequence; [NewFixedSource] replays fixed values, which
// is convenient in tests.
//
// # Backreferences
//
// Successor templates may reference capture groups of the match with \N,
// \g<N>, or \g<name>. Groups are substituted from the highest number down, so
// \12 is never mistaken for \1 followed by "2". Groups that did not
// participate in the match are replaced with the empty string.
//
// # Sequences
//
// [Sequence] yields generation 0 (the axiom) followed by successive
// rewrites, optionally bounded and optionally capped by a maximum string
// length. [Looper] replays a sequence from the axiom each time it is
// exhausted.
package lsystem
