// Package partition implements the six-track class partition of the
// 97-letter message (C2 in the component design): the interleaving of
// indices 0..96 into six disjoint, periodic subsequences, and the
// ordinal of an index within its class.
package partition

// MessageLength is the fixed length of the ciphertext/plaintext this
// module operates on.
const MessageLength = 97

// NumClasses is the number of disjoint classes the partition produces.
const NumClasses = 6

// Class is a class identifier in [0, NumClasses).
type Class int

// Of computes class(i) = ((i mod 2)*3) + (i mod 3) for i in [0,96]. It is
// total, deterministic, and depends only on i.
func Of(i int) Class {
	return Class((i%2)*3 + i%3)
}

// Ordinal returns the 0-based rank of index i among the indices of its
// own class, in ascending order. It is computed directly from i's class
// and position rather than from a precomputed table, so it stays correct
// for any i even outside [0,96] (callers are expected to only ever pass
// valid message indices, but the function itself has no hidden bound).
func Ordinal(i int) int {
	c := Of(i)
	n := 0
	for j := 0; j < i; j++ {
		if Of(j) == c {
			n++
		}
	}
	return n
}

// Indices returns, in ascending order, every index in [0, MessageLength)
// belonging to class c.
func Indices(c Class) []int {
	var out []int
	for i := 0; i < MessageLength; i++ {
		if Of(i) == c {
			out = append(out, i)
		}
	}
	return out
}

// Sizes returns the number of indices in [0, MessageLength) belonging to
// each of the NumClasses classes, indexed by Class.
func Sizes() [NumClasses]int {
	var sizes [NumClasses]int
	for i := 0; i < MessageLength; i++ {
		sizes[Of(i)]++
	}
	return sizes
}
