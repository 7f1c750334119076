package wheel

import (
	"github.com/google/go-cmp/cmp"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/utils/structs"
)

var (
	_ structs.Equatable[Schedule] = (*Schedule)(nil)
	_ structs.Cloner[Schedule]    = (*Schedule)(nil)
)

// Schedule is the ordered collection of six Wheels forming a full key
// generator (spec.md §3). It owns its Wheels outright: no other package
// holds a separate reference into a Schedule's residue storage.
type Schedule struct {
	wheels [partition.NumClasses]*Wheel
}

// NewScheduleFromShape validates shapes (one per class, in class order)
// and builds an empty Schedule (every residue unset). This is the
// literal-to-checked-parameters constructor spec.md §9 and SPEC_FULL.md
// §D2 describe, mirroring rlwe.NewParametersFromLiteral.
func NewScheduleFromShape(shapes [partition.NumClasses]Shape) (*Schedule, error) {
	sch := &Schedule{}
	for c, s := range shapes {
		if err := s.Validate(c); err != nil {
			return nil, err
		}
		sch.wheels[c] = NewWheel(s)
	}
	return sch, nil
}

// Wheel returns the wheel owned by class c. The returned pointer lets
// callers read or (via anchor.Force) mutate residues in place.
func (s *Schedule) Wheel(c partition.Class) *Wheel {
	return s.wheels[c]
}

// Shapes returns the literal shape of each of the six wheels, in class
// order.
func (s *Schedule) Shapes() [partition.NumClasses]Shape {
	var out [partition.NumClasses]Shape
	for c, w := range s.wheels {
		out[c] = w.Shape()
	}
	return out
}

// Complete reports whether every wheel is covered (spec.md §3's
// lifecycle: complete when every slot some index addresses is filled,
// even if unaddressed "null" slots remain unset).
func (s *Schedule) Complete() bool {
	for c, w := range s.wheels {
		if !w.Covered(partition.Class(c)) {
			return false
		}
	}
	return true
}

// Residue looks up the residue addressed by message index i, returning
// faults.IncompleteSchedule if that slot is unset.
func (s *Schedule) Residue(i int) (alphabet.Letter, error) {
	c := partition.Of(i)
	w := s.wheels[c]
	slot := w.Slot(i)
	k, ok := w.At(slot)
	if !ok {
		return 0, &faults.IncompleteSchedule{Index: i, Class: int(c), Slot: slot}
	}
	return k, nil
}

// Clone returns an independent deep copy of the schedule.
func (s *Schedule) Clone() *Schedule {
	cp := &Schedule{}
	for c, w := range s.wheels {
		cp.wheels[c] = w.Clone()
	}
	return cp
}

// Equal reports whether s and other have identical wheels in every
// class, in class order.
func (s *Schedule) Equal(other *Schedule) bool {
	if other == nil {
		return false
	}
	return cmp.Equal(s.wheels, other.wheels, cmp.Comparer(func(a, b *Wheel) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Equal(b)
	}))
}
