// Package engine implements the encrypt/decrypt engine (C6): a pure,
// O(1)-per-index application of the mixed-family schedule, with no
// branches beyond the per-class family dispatch already done by
// alphabet.Family.
package engine

import (
	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Decrypt runs sch over ciphertext to produce plaintext, index by index.
// It is an error (faults.IncompleteSchedule, surfaced from
// wheel.Schedule.Residue) for any addressed slot to still be unset.
func Decrypt(sch *wheel.Schedule, ciphertext []alphabet.Letter) ([]alphabet.Letter, error) {
	return run(sch, ciphertext, func(f alphabet.Family, c, k alphabet.Letter) alphabet.Letter {
		return f.Decrypt(c, k)
	})
}

// Encrypt runs sch over plaintext to produce ciphertext, index by index.
func Encrypt(sch *wheel.Schedule, plaintext []alphabet.Letter) ([]alphabet.Letter, error) {
	return run(sch, plaintext, func(f alphabet.Family, p, k alphabet.Letter) alphabet.Letter {
		return f.Encrypt(p, k)
	})
}

func run(sch *wheel.Schedule, in []alphabet.Letter, apply func(alphabet.Family, alphabet.Letter, alphabet.Letter) alphabet.Letter) ([]alphabet.Letter, error) {
	if len(in) != partition.MessageLength {
		return nil, &faults.InputMalformed{Reason: "input must be exactly 97 letters"}
	}

	out := make([]alphabet.Letter, partition.MessageLength)
	for i := 0; i < partition.MessageLength; i++ {
		k, err := sch.Residue(i)
		if err != nil {
			return nil, err
		}
		w := sch.Wheel(partition.Of(i))
		out[i] = apply(w.Family, in[i], k)
	}
	return out, nil
}
