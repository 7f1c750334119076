package solve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/anchor"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

func uniformShapes(fam alphabet.Family, l int) [partition.NumClasses]wheel.Shape {
	var shapes [partition.NumClasses]wheel.Shape
	for c := range shapes {
		shapes[c] = wheel.Shape{Family: fam, L: l, Phase: 0}
	}
	return shapes
}

func flatCiphertext(t *testing.T, fill byte, overrides map[int]byte) []alphabet.Letter {
	t.Helper()
	raw := make([]byte, partition.MessageLength)
	for i := range raw {
		raw[i] = fill
	}
	for i, b := range overrides {
		raw[i] = b
	}
	letters, err := alphabet.ParseText(string(raw))
	require.NoError(t, err)
	return letters
}

func TestFeasibleAcceptsConsistentAnchors(t *testing.T) {
	shapes := uniformShapes(alphabet.Vigenere, 17)
	ciphertext := flatCiphertext(t, 'A', map[int]byte{21: 'E', 25: 'X'})

	a1, err := anchor.NewAnchor(21, "A")
	require.NoError(t, err)
	a2, err := anchor.NewAnchor(25, "A")
	require.NoError(t, err)

	sch, err := Feasible(ciphertext, []anchor.Anchor{a1, a2}, shapes)
	require.NoError(t, err)
	require.NotNil(t, sch)
}

func TestFeasibleRejectsOptionAViolation(t *testing.T) {
	shapes := uniformShapes(alphabet.Vigenere, 17)
	ciphertext := flatCiphertext(t, 'A', nil)

	a, err := anchor.NewAnchor(0, "A")
	require.NoError(t, err)

	_, err = Feasible(ciphertext, []anchor.Anchor{a}, shapes)
	require.Error(t, err)
	var target *faults.OptionAViolation
	require.ErrorAs(t, err, &target)
}

func TestFeasibleRejectsInvalidShape(t *testing.T) {
	shapes := uniformShapes(alphabet.Vigenere, 17)
	shapes[0].L = 999
	ciphertext := flatCiphertext(t, 'A', nil)

	_, err := Feasible(ciphertext, nil, shapes)
	require.Error(t, err)
	var target *faults.ShapeInvalid
	require.ErrorAs(t, err, &target)
}

func TestFeasibleRejectsWrongCiphertextLength(t *testing.T) {
	shapes := uniformShapes(alphabet.Vigenere, 17)

	_, err := Feasible(make([]alphabet.Letter, 10), nil, shapes)
	require.Error(t, err)
	var target *faults.InputMalformed
	require.ErrorAs(t, err, &target)
}
