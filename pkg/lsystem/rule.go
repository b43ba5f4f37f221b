package lsystem

import (
	"math"

	"github.com/dlclark/regexp2"

	"github.com/matzehuels/linden/pkg/errors"
)

// Successor is one weighted replacement template of a [Rule].
//
// Threshold is an upper bound on the random draw: a rule picks the first
// successor whose Threshold is greater than or equal to the draw.
type Successor struct {
	Threshold   float64 `json:"threshold" toml:"threshold" yaml:"threshold" mapstructure:"threshold"`
	Replacement string  `json:"replacement" toml:"replacement" yaml:"replacement" mapstructure:"replacement"`
}

// Rule is a named rewrite rule.
//
// Predecessor is a regular expression in Python syntax. Successors must have
// thresholds in (0,1] in strictly ascending order. A draw above the last
// threshold selects no successor and the match is replaced with the empty
// string.
//
// A Rule decoded from a file is not usable for matching until it passes
// through [Compile] or [NewRule].
type Rule struct {
	Name        string      `json:"name" toml:"name" yaml:"name" mapstructure:"name"`
	Enabled     bool        `json:"enabled" toml:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Protected   bool        `json:"protected" toml:"protected" yaml:"protected" mapstructure:"protected"`
	Predecessor string      `json:"predecessor" toml:"predecessor" yaml:"predecessor" mapstructure:"predecessor"`
	Successors  []Successor `json:"successors" toml:"successors" yaml:"successors" mapstructure:"successors"`

	re     *regexp2.Regexp
	groups map[string]int
}

// RuleOption configures a rule built by [NewRule].
type RuleOption func(*Rule)

// WithEnabled sets whether the rule participates in rewriting. Rules are
// enabled by default.
func WithEnabled(enabled bool) RuleOption {
	return func(r *Rule) { r.Enabled = enabled }
}

// WithProtected sets whether the rule's output is shielded from later rules
// in the same generation. Rules are protected by default.
func WithProtected(protected bool) RuleOption {
	return func(r *Rule) { r.Protected = protected }
}

// NewRule builds, validates, and compiles a rule. The rule is enabled and
// protected unless options say otherwise.
func NewRule(name, predecessor string, successors []Successor, opts ...RuleOption) (Rule, error) {
	r := Rule{
		Name:        name,
		Enabled:     true,
		Protected:   true,
		Predecessor: predecessor,
		Successors:  successors,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.compile(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// MustRule is like [NewRule] but panics on error. It is intended for
// package-level rule tables.
func MustRule(name, predecessor string, successors []Successor, opts ...RuleOption) Rule {
	r, err := NewRule(name, predecessor, successors, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks the successor thresholds and that the predecessor compiles.
func (r Rule) Validate() error {
	return r.compile()
}

// Choose returns the replacement of the first successor whose threshold is at
// least x. It returns false when x exceeds every threshold.
func (r Rule) Choose(x float64) (string, bool) {
	for _, s := range r.Successors {
		if x <= s.Threshold {
			return s.Replacement, true
		}
	}
	return "", false
}

// MatchString reports whether the predecessor matches anywhere in s.
// An invalid predecessor never matches.
func (r Rule) MatchString(s string) bool {
	re := r.re
	if re == nil {
		var err error
		if re, _, err = compilePredecessor(r.Predecessor); err != nil {
			return false
		}
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// label names the rule in error messages.
func (r Rule) label() string {
	if r.Name == "" {
		return r.Predecessor
	}
	return r.Name
}

func (r *Rule) compile() error {
	if len(r.Successors) == 0 {
		return errors.New(errors.ErrCodeInvalidRule, "rule %q: no successors", r.label())
	}
	prev := 0.0
	for i, s := range r.Successors {
		switch {
		case math.IsNaN(s.Threshold) || s.Threshold <= 0 || s.Threshold > 1:
			return errors.New(errors.ErrCodeInvalidRule,
				"rule %q: successor %d threshold %v outside (0,1]", r.label(), i, s.Threshold)
		case i > 0 && s.Threshold <= prev:
			return errors.New(errors.ErrCodeInvalidRule,
				"rule %q: successor %d threshold %v does not ascend past %v", r.label(), i, s.Threshold, prev)
		}
		prev = s.Threshold
	}

	re, groups, err := compilePredecessor(r.Predecessor)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRule, err, "rule %q: predecessor %q", r.label(), r.Predecessor)
	}
	r.re, r.groups = re, groups
	return nil
}
