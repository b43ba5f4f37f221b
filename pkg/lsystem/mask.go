package lsystem

// mask flags runes of the in-progress string that later rules must not
// rewrite. It is kept the same length as the string it shadows.
type mask []bool

func newMask(n int) mask {
	return make(mask, n)
}

func (m mask) clone() mask {
	return append(mask(nil), m...)
}

// coverage reports whether any and whether all runes of [start,end) are set.
// An empty span is never covered.
func (m mask) coverage(start, end int) (anySet, allSet bool) {
	if start >= end {
		return false, false
	}
	allSet = true
	for _, v := range m[start:end] {
		if v {
			anySet = true
		} else {
			allSet = false
		}
	}
	return anySet, allSet
}

// splice replaces [start,end) with n copies of v.
func (m mask) splice(start, end, n int, v bool) mask {
	out := make(mask, 0, len(m)-(end-start)+n)
	out = append(out, m[:start]...)
	for range n {
		out = append(out, v)
	}
	return append(out, m[end:]...)
}
