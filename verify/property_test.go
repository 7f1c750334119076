package verify

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/engine"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// TestRederivePerturbOneLetterBreaksParity is spec.md §8's closing
// property-based test: for randomly generated (shape, ciphertext,
// plaintext) triples, rederive the schedule via Rederive (C7), perturb
// one plaintext letter, and check that rederiving again either fails
// outright (a forcer failure at that letter's class/slot) or would not
// reproduce the original ciphertext.
//
// The period L is restricted to [10,15] here rather than the full
// [10,22] shape range: every class has 16 or 17 members
// (partition.Sizes), and only L < class size guarantees two message
// indices share a wheel slot. Without that guarantee a single perturbed
// letter at a slot no other index addresses has no counter-evidence to
// contradict it — the schedule is simply re-solved around the new
// letter instead of rejecting it — so the uniqueness property under
// test only holds where genuine redundancy exists. Following the
// teacher's own manual-loop style for randomized tests (rather than
// testing/quick), randomness here is seeded explicitly with a fixed
// math/rand/v2 PCG source, matching SPEC_FULL.md's §8 design note.
func TestRederivePerturbOneLetterBreaksParity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1337, 97))

	const trials = 25
	for trial := 0; trial < trials; trial++ {
		L := 10 + rng.IntN(6) // [10,15]: always less than every class's 16 or 17 members.

		var shapes [partition.NumClasses]wheel.Shape
		for c := range shapes {
			shapes[c] = wheel.Shape{
				Family: alphabet.Family(rng.IntN(3)),
				L:      L,
				Phase:  rng.IntN(L),
			}
		}

		sch, err := wheel.NewScheduleFromShape(shapes)
		require.NoError(t, err)

		for c := partition.Class(0); int(c) < partition.NumClasses; c++ {
			w := sch.Wheel(c)
			for s := 0; s < w.L; s++ {
				var k alphabet.Letter
				if w.Family.RequiresOptionA() {
					k = alphabet.Letter(1 + rng.IntN(25)) // [1,25]: never the forbidden zero residue.
				} else {
					k = alphabet.Letter(rng.IntN(26))
				}
				w.Set(s, k)
			}
		}

		plaintext := make([]alphabet.Letter, partition.MessageLength)
		for i := range plaintext {
			plaintext[i] = alphabet.Letter(rng.IntN(26))
		}

		ciphertext, err := engine.Encrypt(sch, plaintext)
		require.NoError(t, err)

		result, err := Rederive(shapes, ciphertext, plaintext, "")
		require.NoError(t, err)
		require.True(t, result.Schedule.Equal(sch))

		// An index whose class ordinal is >= L is guaranteed to share its
		// wheel slot with an earlier (smaller-index, unperturbed) member
		// of the same class, since ordinal - L is itself a valid,
		// strictly smaller ordinal in the same class.
		idx := -1
		for i := partition.MessageLength - 1; i >= 0; i-- {
			if partition.Ordinal(i) >= L {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0, "every class has more members than L<=15, so a shared slot always exists")

		delta := alphabet.Letter(1 + rng.IntN(25)) // [1,25]: guaranteed to actually change the letter mod 26.
		perturbed := make([]alphabet.Letter, partition.MessageLength)
		copy(perturbed, plaintext)
		perturbed[idx] = alphabet.Add(perturbed[idx], delta)

		_, err = Rederive(shapes, ciphertext, perturbed, "")
		require.Error(t, err, "perturbing index %d (trial %d, L=%d) must break rederivation parity", idx, trial, L)
	}
}
