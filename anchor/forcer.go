package anchor

import (
	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Force propagates a set of anchors (plaintext cribs at known ciphertext
// positions) through sch's wheels, per spec.md §4.3's five-step
// procedure. It mutates sch's residues in place and is:
//
//   - commutative: any jointly-satisfiable anchor set produces the same
//     residues regardless of insertion order, because every pair is
//     processed independently against whatever is already written;
//   - idempotent: forcing the same (index, letter) twice is a no-op on
//     the second pass, since the forced residue already matches.
//
// ciphertext must be exactly partition.MessageLength letters. On the
// first unsatisfiable pair, Force returns *faults.OptionAViolation or
// *faults.ResidueCollision and leaves every residue written so far in
// place — callers treat this as a feasibility verdict, never retry the
// same anchor set against the same schedule.
func Force(sch *wheel.Schedule, ciphertext []alphabet.Letter, anchors []Anchor) error {
	if len(ciphertext) != partition.MessageLength {
		return &faults.InputMalformed{Reason: "ciphertext must be exactly 97 letters"}
	}

	for _, a := range anchors {
		if a.Start < 0 || a.Start+len(a.Text) > partition.MessageLength {
			return &faults.InputMalformed{Reason: "anchor extends past index 96"}
		}
	}

	for _, pr := range expand(anchors) {
		if err := forceOne(sch, ciphertext, pr.index, pr.letter); err != nil {
			return err
		}
	}
	return nil
}

// forceOne is spec.md §4.3's per-anchor-letter procedure.
func forceOne(sch *wheel.Schedule, ciphertext []alphabet.Letter, index int, plain alphabet.Letter) error {
	class := partition.Of(index)
	w := sch.Wheel(class)
	slot := w.Slot(index)

	k := w.Family.ResidueForAnchor(ciphertext[index], plain)

	if w.Family.RequiresOptionA() && k == 0 {
		return &faults.OptionAViolation{Class: int(class), Slot: slot, Index: index}
	}

	existing, ok := w.At(slot)
	if !ok {
		w.SetFrom(slot, k, index)
		return nil
	}
	if existing == k {
		return nil // idempotent no-op
	}
	return &faults.ResidueCollision{
		Class:         int(class),
		Slot:          slot,
		Existing:      int(existing),
		Attempted:     int(k),
		PriorIndex:    w.SetIndex(slot),
		ConflictIndex: index,
	}
}
