// Package alphabet implements the 26-letter modular arithmetic and the
// three classical cipher families (C1 in the component design) that the
// rest of this module builds on.
package alphabet

import "fmt"

// Size is the cardinality of the alphabet: 'A'..'Z'.
const Size = 26

// Letter is an integer in [0,Size), with 'A'=0 and 'Z'=Size-1.
type Letter int

// FromByte converts an ASCII byte to a Letter. It accepts both cases and
// reports whether b was a letter at all.
func FromByte(b byte) (Letter, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return Letter(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return Letter(b - 'a'), true
	default:
		return 0, false
	}
}

// Byte returns the canonical uppercase ASCII representation of l.
func (l Letter) Byte() byte {
	return byte('A' + mod(int(l)))
}

// String implements fmt.Stringer.
func (l Letter) String() string {
	return string(l.Byte())
}

// mod is the mathematical modulo operation on Size, always returning a
// value in [0,Size) regardless of the sign of x (unlike Go's %).
func mod(x int) int {
	m := x % Size
	if m < 0 {
		m += Size
	}
	return m
}

// Add returns (a+b) mod Size as a Letter.
func Add(a, b Letter) Letter {
	return Letter(mod(int(a) + int(b)))
}

// Sub returns (a-b) mod Size as a Letter.
func Sub(a, b Letter) Letter {
	return Letter(mod(int(a) - int(b)))
}

// ParseText converts a string of A..Z/a..z letters into a Letter slice. It
// returns an error naming the first offending byte's position when the
// string contains anything else.
func ParseText(s string) ([]Letter, error) {
	out := make([]Letter, len(s))
	for i := 0; i < len(s); i++ {
		l, ok := FromByte(s[i])
		if !ok {
			return nil, fmt.Errorf("alphabet: byte %d (%q) at position %d is not A..Z", s[i], string(s[i]), i)
		}
		out[i] = l
	}
	return out, nil
}

// Text renders a Letter slice back to its canonical uppercase string form.
func Text(ls []Letter) string {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = l.Byte()
	}
	return string(b)
}
