package anchor

import (
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// CheckOptionA is the independent audit spec.md §4.4 describes: given a
// schedule and the same anchor set that produced it, re-verify that
// every Vigenere/VariantBeaufort anchor slot holds a non-zero residue.
// Beaufort anchors are exempt. This is redundant with Force's on-the-fly
// rejection, but is kept as a separate pass so a schedule assembled by
// any other path (e.g. verify.Rederive, or a hand-built test fixture)
// can still be audited.
func CheckOptionA(sch *wheel.Schedule, anchors []Anchor) error {
	for _, pr := range expand(anchors) {
		class := partition.Of(pr.index)
		w := sch.Wheel(class)
		if !w.Family.RequiresOptionA() {
			continue
		}
		slot := w.Slot(pr.index)
		k, ok := w.At(slot)
		if !ok {
			// Not this check's concern: an unset slot is
			// faults.IncompleteSchedule territory, surfaced by the
			// engine, not an Option-A finding.
			continue
		}
		if k == 0 {
			return &faults.OptionAViolation{Class: int(class), Slot: slot, Index: pr.index}
		}
	}
	return nil
}
