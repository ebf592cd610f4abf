// Package naming derives Go identifiers for generated declarations from the
// names found in user code.
package naming

import "unicode"

// class is the kind of a rune with respect to word boundaries.
type class int

const (
	other class = iota
	lower
	upper
	digit
	underscore
)

func classOf(r rune) class {
	switch {
	case r == '_':
		return underscore
	case unicode.IsDigit(r):
		return digit
	case unicode.IsUpper(r):
		return upper
	case unicode.IsLower(r):
		return lower
	}
	return other
}

// SplitWords splits an identifier into words. A word ends before an upper-case
// letter following a lower-case one, before the last upper-case letter of an
// acronym followed by a lower-case letter ("HTTPAddr" is "HTTP" and "Addr"),
// and wherever a run of digits or underscores starts or ends.
//
//	getID       -> get ID
//	send_nowait -> send _ nowait
//	file2name   -> file 2 name
func SplitWords(s string) []string {
	rs := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(rs); i++ {
		prev, cur := classOf(rs[i-1]), classOf(rs[i])
		var next class
		if i+1 < len(rs) {
			next = classOf(rs[i+1])
		}

		var split bool
		switch {
		case (prev == underscore) != (cur == underscore):
			split = true
		case (prev == digit) != (cur == digit):
			split = prev != other && cur != other
		case cur == upper:
			split = prev == lower || prev == upper && next == lower
		}
		if split {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	if start < len(rs) {
		words = append(words, string(rs[start:]))
	}
	return words
}
