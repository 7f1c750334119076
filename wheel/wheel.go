// Package wheel implements the periodic wheel model (C3) and the proof
// digest schema (C8): a Shape is the unchecked, caller-supplied literal
// describing a class's (family, period, phase); a Schedule is the
// validated, mutable-until-complete collection of six Wheels built from
// a Shape, mirroring the teacher's ParametersLiteral / NewParametersFromLiteral
// split (rlwe.ParametersLiteral -> rlwe.NewParametersFromLiteral) between
// an unchecked literal and a validated runtime object.
package wheel

import (
	"github.com/google/go-cmp/cmp"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/utils/structs"
)

var (
	_ structs.Equatable[Wheel] = (*Wheel)(nil)
	_ structs.Cloner[Wheel]    = (*Wheel)(nil)
)

// MinLength and MaxLength bound a wheel's period L, per spec.md §3.
const (
	MinLength = 10
	MaxLength = 22
)

// Shape is the unchecked, literal description of one class's wheel: the
// cipher family, period and phase a caller wants to try. It has public
// fields so it can be expressed directly in Go, or round-tripped through
// JSON as part of a larger schedule shape (see the shape config in
// cmd/k4wheel).
type Shape struct {
	Family alphabet.Family `json:"family"`
	L      int             `json:"period"`
	Phase  int             `json:"phase"`
}

// Validate checks L and Phase are in bounds and Family is a known tag.
// class identifies which of the six classes this shape belongs to, for
// error reporting only.
func (s Shape) Validate(class int) error {
	if !s.Family.Valid() {
		return &faults.ShapeInvalid{Class: class, Reason: "unknown cipher family"}
	}
	if !within(s.L, MinLength, MaxLength) {
		return &faults.ShapeInvalid{Class: class, Reason: "period L must be in [10,22]"}
	}
	if !within(s.Phase, 0, s.L-1) {
		return &faults.ShapeInvalid{Class: class, Reason: "phase must be in [0,L)"}
	}
	return nil
}

// Wheel is one class's (family, L, phase, residues) tuple (spec.md §3).
// Residues are write-once: NewWheel starts every slot unset, and only
// the anchor package (Force, via SetFrom) and FromDigest (via Set) write
// them.
type Wheel struct {
	Family   alphabet.Family
	L        int
	Phase    int
	residues []int // values in [0,25]; -1 means unset
	setBy    []int // message index that wrote each slot; -1 if unset
}

const unset = -1

// NewWheel builds an empty Wheel (all residues unset) from a validated
// Shape. Callers should run Shape.Validate first; NewWheel itself does
// not re-validate.
func NewWheel(s Shape) *Wheel {
	w := &Wheel{
		Family:   s.Family,
		L:        s.L,
		Phase:    s.Phase,
		residues: make([]int, s.L),
		setBy:    make([]int, s.L),
	}
	for i := range w.residues {
		w.residues[i] = unset
		w.setBy[i] = unset
	}
	return w
}

// Shape returns the literal shape this wheel was built from.
func (w *Wheel) Shape() Shape {
	return Shape{Family: w.Family, L: w.L, Phase: w.Phase}
}

// Slot addresses the residue slot that message index i falls into on
// this wheel: (ordinal_in_class(i) + phase) mod L.
func (w *Wheel) Slot(i int) int {
	return (partition.Ordinal(i) + w.Phase) % w.L
}

// At returns the residue at slot s and whether it is set.
func (w *Wheel) At(s int) (alphabet.Letter, bool) {
	v := w.residues[s]
	if v == unset {
		return 0, false
	}
	return alphabet.Letter(v), true
}

// Set writes residue k at slot s, unconditionally, recording no source
// index (SetIndex reports -1 afterwards), e.g. when rebuilding a wheel
// from a proof digest. FromDigest uses Set and Force uses SetFrom; both
// callers are responsible for detecting and rejecting collisions before
// writing.
func (w *Wheel) Set(s int, k alphabet.Letter) {
	w.SetFrom(s, k, unset)
}

// SetFrom is Set, additionally recording which message index forced
// this write, so a later collision can report both conflicting indices
// (spec.md §7/§8 property 5: "collision symmetry").
func (w *Wheel) SetFrom(s int, k alphabet.Letter, index int) {
	w.residues[s] = int(k)
	w.setBy[s] = index
}

// SetIndex returns the message index that wrote slot s, or -1 if the
// slot is unset or was set without a known index (e.g. from a digest).
func (w *Wheel) SetIndex(s int) int {
	return w.setBy[s]
}

// AddressedMask returns, for each of this wheel's L slots, whether some
// index in [0, partition.MessageLength) actually addresses it. This is
// derived by iterating every message index rather than hard-coded, per
// spec.md §9's "must be derived programmatically, not hard-coded."
// class is the class this wheel belongs to.
func (w *Wheel) AddressedMask(class partition.Class) []bool {
	mask := make([]bool, w.L)
	for i := 0; i < partition.MessageLength; i++ {
		if partition.Of(i) != class {
			continue
		}
		mask[w.Slot(i)] = true
	}
	return mask
}

// Covered reports whether every slot addressed by some index of the
// given class is set (spec.md §4.2's "covered" wheel definition). Slots
// that no index ever addresses are ignored (legitimate null slots).
func (w *Wheel) Covered(class partition.Class) bool {
	for s, addressed := range w.AddressedMask(class) {
		if addressed {
			if _, ok := w.At(s); !ok {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent deep copy of w.
func (w *Wheel) Clone() *Wheel {
	cp := &Wheel{
		Family:   w.Family,
		L:        w.L,
		Phase:    w.Phase,
		residues: make([]int, len(w.residues)),
		setBy:    make([]int, len(w.setBy)),
	}
	copy(cp.residues, w.residues)
	copy(cp.setBy, w.setBy)
	return cp
}

// Equal reports whether w and other have the same shape and residues.
// Mirrors the teacher's rlwe.Parameters.Equal, which likewise defers slice
// comparison to cmp.Equal rather than a hand-rolled loop.
func (w *Wheel) Equal(other *Wheel) bool {
	if other == nil {
		return false
	}
	if w.Family != other.Family || w.L != other.L || w.Phase != other.Phase {
		return false
	}
	return cmp.Equal(w.residues, other.residues)
}
