package lsystem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// compilePredecessor compiles a Python-syntax expression with regexp2, which
// matches on runes.
//
// Python numbers every capture group by the position of its opening
// parenthesis, named or not, while regexp2 numbers named groups after all
// unnamed ones. Named groups are therefore rewritten to plain groups before
// compiling, and the returned map gives each name its Python group number.
func compilePredecessor(expr string) (*regexp2.Regexp, map[string]int, error) {
	plain, groups, err := unnameGroups(expr)
	if err != nil {
		return nil, nil, err
	}
	re, err := regexp2.Compile(plain, regexp2.None)
	if err != nil {
		return nil, nil, err
	}
	return re, groups, nil
}

// unnameGroups turns (?P<name>...) and (?<name>...) into (...), and the
// (?P=name) backreference into a numbered one.
func unnameGroups(expr string) (string, map[string]int, error) {
	var b strings.Builder
	groups := make(map[string]int)
	n := 0
	inClass := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\':
			b.WriteByte(c)
			if i+1 < len(expr) {
				i++
				b.WriteByte(expr[i])
			}
			continue
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			b.WriteByte(c)
			// A ']' first in a class is literal.
			if strings.HasPrefix(expr[i+1:], "^") {
				i++
				b.WriteByte('^')
			}
			if strings.HasPrefix(expr[i+1:], "]") {
				i++
				b.WriteByte(']')
			}
			continue
		case c == '(':
			rest := expr[i+1:]
			switch {
			case !strings.HasPrefix(rest, "?"):
				n++
			case strings.HasPrefix(rest, "?P="):
				name, end, err := groupName(rest[3:], ')')
				if err != nil {
					return "", nil, err
				}
				num, ok := groups[name]
				if !ok {
					return "", nil, fmt.Errorf("unknown group name %q", name)
				}
				b.WriteString(`(?:\` + strconv.Itoa(num) + `)`)
				i += 1 + 3 + end
				continue
			case namedOpen(rest):
				skip := 2
				if rest[1] == 'P' {
					skip = 3
				}
				name, end, err := groupName(rest[skip:], '>')
				if err != nil {
					return "", nil, err
				}
				if _, dup := groups[name]; dup {
					return "", nil, fmt.Errorf("redefinition of group name %q", name)
				}
				n++
				groups[name] = n
				b.WriteByte('(')
				i += 1 + skip + end
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String(), groups, nil
}

// namedOpen reports whether rest, the text after '(', opens a named group.
// (?<= and (?<! are look-behinds.
func namedOpen(rest string) bool {
	if strings.HasPrefix(rest, "?P<") {
		return true
	}
	return len(rest) > 2 && rest[:2] == "?<" && rest[2] != '=' && rest[2] != '!'
}

// groupName reads a group name terminated by term and returns it with the
// index of term in s.
func groupName(s string, term byte) (string, int, error) {
	end := strings.IndexByte(s, term)
	if end <= 0 {
		return "", 0, fmt.Errorf("malformed group name in %q", s)
	}
	name := s[:end]
	for i, r := range name {
		if r != '_' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !(i > 0 && '0' <= r && r <= '9') {
			return "", 0, fmt.Errorf("bad character in group name %q", name)
		}
	}
	return name, end, nil
}
