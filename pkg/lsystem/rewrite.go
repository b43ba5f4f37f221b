package lsystem

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Grammar is a validated, ordered rule list. It is read-only after [Compile]
// and safe to share between goroutines; the [Source] passed to Rewrite is not.
type Grammar struct {
	rules []Rule
}

// Compile validates and compiles rules in order. The first invalid rule is
// reported by name.
func Compile(rules []Rule) (*Grammar, error) {
	g := &Grammar{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		if err := r.compile(); err != nil {
			return nil, err
		}
		g.rules[i] = r
	}
	return g, nil
}

// Rules returns a copy of the compiled rules.
func (g *Grammar) Rules() []Rule {
	return slices.Clone(g.rules)
}

// Rewrite applies the grammar to input for the given number of generations.
// It returns early once a generation leaves the string unchanged. Zero or
// negative generations return input as is.
func (g *Grammar) Rewrite(input string, generations int, src Source) string {
	text := []rune(input)
	for range generations {
		next := g.generation(text, src)
		if slices.Equal(next, text) {
			break
		}
		text = next
	}
	return string(text)
}

// generation runs every enabled rule once over text. The protection mask
// starts clear and carries from one rule to the next.
func (g *Grammar) generation(text []rune, src Source) []rune {
	out := slices.Clone(text)
	shield := newMask(len(out))
	for i := range g.rules {
		r := &g.rules[i]
		if !r.Enabled {
			continue
		}
		out, shield = r.apply(out, shield, src)
	}
	return out
}

// apply rewrites every match of r in out. Matches are taken from the string
// as it stood when the rule began and shifted by the length change of the
// replacements made so far. own shields the rule's own output from itself.
func (r *Rule) apply(out []rune, shield mask, src Source) ([]rune, mask) {
	own := shield.clone()
	snapshot := slices.Clone(out)
	offset := 0

	m, _ := r.re.FindRunesMatch(snapshot)
	for ; m != nil; m, _ = r.re.FindNextMatch(m) {
		hit := m
		start := clamp(m.Index+offset, 0, len(out))
		end := clamp(m.Index+m.Length+offset, start, len(out))

		if anySet, allSet := own.coverage(start, end); anySet {
			if allSet {
				continue
			}
			// The match overlaps earlier output but may hide a match that
			// starts inside it; retry one rune further on the current string.
			from := min(start+1, len(out))
			fb, _ := r.re.FindRunesMatch(out[from:])
			if fb == nil {
				break
			}
			hit = fb
			start = from + fb.Index
			end = start + fb.Length
		}

		succ := []rune(r.successor(hit, src.Float64()))
		out = slices.Concat(out[:start], succ, out[end:])
		own = own.splice(start, end, len(succ), true)
		shield = shield.splice(start, end, len(succ), r.Protected)
		offset += len(succ) - (end - start)
	}
	return out, shield
}

// successor picks the replacement for draw x and fills in backreferences
// from m.
func (r *Rule) successor(m *regexp2.Match, x float64) string {
	tmpl, ok := r.Choose(x)
	if !ok || !strings.Contains(tmpl, `\`) {
		return tmpl
	}

	nums := r.re.GetGroupNumbers()
	slices.Sort(nums)
	for _, n := range slices.Backward(nums) {
		text := groupText(m.GroupByNumber(n))
		num := strconv.Itoa(n)
		tmpl = strings.ReplaceAll(tmpl, `\`+num, text)
		tmpl = strings.ReplaceAll(tmpl, `\g<`+num+`>`, text)
	}
	for name, n := range r.groups {
		tmpl = strings.ReplaceAll(tmpl, `\g<`+name+`>`, groupText(m.GroupByNumber(n)))
	}
	return tmpl
}

// groupText returns the last capture of g, or "" when g did not participate.
func groupText(g *regexp2.Group) string {
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
