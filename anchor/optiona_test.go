package anchor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/wheel"
)

func TestCheckOptionAPassesForNonZeroResidues(t *testing.T) {
	sch := allVigenereSchedule(t, 17, 0)
	ciphertext := flatCiphertext('A', map[int]byte{21: 'E'})
	a, err := NewAnchor(21, "A")
	require.NoError(t, err)
	require.NoError(t, Force(sch, ciphertext, []Anchor{a}))

	require.NoError(t, CheckOptionA(sch, []Anchor{a}))
}

func TestCheckOptionADetectsForcedZeroResidue(t *testing.T) {
	// Build a schedule out-of-band (not through Force) with a zero
	// residue at the anchor's slot, to exercise CheckOptionA on its own
	// rather than relying on Force's inline rejection.
	sch := allVigenereSchedule(t, 17, 0)
	a, err := NewAnchor(21, "A")
	require.NoError(t, err)

	w := sch.Wheel(3) // partition.Of(21) == 3
	w.Set(w.Slot(21), 0)

	err = CheckOptionA(sch, []Anchor{a})
	require.Error(t, err)
	var target *faults.OptionAViolation
	require.ErrorAs(t, err, &target)
}

func TestCheckOptionASkipsUnsetSlots(t *testing.T) {
	sch := allVigenereSchedule(t, 17, 0)
	a, err := NewAnchor(21, "A")
	require.NoError(t, err)

	require.NoError(t, CheckOptionA(sch, []Anchor{a}))
}

func TestCheckOptionASkipsBeaufort(t *testing.T) {
	shapes := allVigenereSchedule(t, 17, 0).Shapes()
	shapes[3].Family = alphabet.Beaufort

	rebuilt, err := wheel.NewScheduleFromShape(shapes)
	require.NoError(t, err)

	a, err := NewAnchor(21, "A")
	require.NoError(t, err)
	w := rebuilt.Wheel(3)
	w.Set(w.Slot(21), 0)

	require.NoError(t, CheckOptionA(rebuilt, []Anchor{a}))
}
