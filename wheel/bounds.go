package wheel

import "golang.org/x/exp/constraints"

// within reports whether v lies in [lo,hi]. Shape.Validate uses this for
// both its L and Phase bounds checks instead of repeating the
// comparison twice with different operand types.
func within[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
