package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/engine"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

func buildFixture(t *testing.T) ([partition.NumClasses]wheel.Shape, []alphabet.Letter, []alphabet.Letter) {
	t.Helper()

	families := [partition.NumClasses]alphabet.Family{
		alphabet.Vigenere, alphabet.Beaufort, alphabet.VariantBeaufort,
		alphabet.Vigenere, alphabet.Beaufort, alphabet.VariantBeaufort,
	}
	var shapes [partition.NumClasses]wheel.Shape
	for c, fam := range families {
		shapes[c] = wheel.Shape{Family: fam, L: 13, Phase: 0}
	}
	sch, err := wheel.NewScheduleFromShape(shapes)
	require.NoError(t, err)
	for c := partition.Class(0); int(c) < partition.NumClasses; c++ {
		w := sch.Wheel(c)
		for s := 0; s < w.L; s++ {
			w.Set(s, alphabet.Letter(1+(s*7+int(c)*3)%25))
		}
	}

	plaintext, err := alphabet.ParseText("THEPANELEDCHAMBERWASSILENTEXCEPTFORTHESHALLOWBREATHOFTHEFIGUREHIDDENBEHINDTHEBRASSVENEEREDPANELSX")
	require.NoError(t, err)
	require.Len(t, plaintext, partition.MessageLength)

	ciphertext, err := engine.Encrypt(sch, plaintext)
	require.NoError(t, err)

	return shapes, ciphertext, plaintext
}

func TestRederiveSucceeds(t *testing.T) {
	shapes, ciphertext, plaintext := buildFixture(t)

	result, err := Rederive(shapes, ciphertext, plaintext, "")
	require.NoError(t, err)
	require.Len(t, result.PlainSHA256, 64)
	require.Equal(t, Sha256Hex(plaintext), result.PlainSHA256)
}

func TestRederiveChecksWantSHA256(t *testing.T) {
	shapes, ciphertext, plaintext := buildFixture(t)

	want := Sha256Hex(plaintext)
	_, err := Rederive(shapes, ciphertext, plaintext, want)
	require.NoError(t, err)

	_, err = Rederive(shapes, ciphertext, plaintext, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	var target *faults.MismatchOnRederivation
	require.ErrorAs(t, err, &target)
	require.True(t, target.ShaMismatch)
}

func TestRederiveDetectsRewrittenCiphertext(t *testing.T) {
	shapes, ciphertext, plaintext := buildFixture(t)

	tampered := make([]alphabet.Letter, len(ciphertext))
	copy(tampered, ciphertext)
	tampered[0] = alphabet.Add(tampered[0], 1)

	_, err := Rederive(shapes, tampered, plaintext, "")
	require.Error(t, err)
}

func TestRederiveRejectsWrongLength(t *testing.T) {
	shapes, ciphertext, plaintext := buildFixture(t)

	_, err := Rederive(shapes, ciphertext[:50], plaintext, "")
	require.Error(t, err)
	var target *faults.InputMalformed
	require.ErrorAs(t, err, &target)
}

func TestSha256HexIsDeterministic(t *testing.T) {
	_, _, plaintext := buildFixture(t)
	require.Equal(t, Sha256Hex(plaintext), Sha256Hex(plaintext))
}
