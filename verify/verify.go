// Package verify implements the rederivation verifier (C7): recompute a
// schedule from ciphertext+candidate plaintext treated as a full set of
// anchors, re-encrypt, and check round-trip and SHA-256 parity.
package verify

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/anchor"
	"github.com/anchorcipher/k4wheel/engine"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Result is the outcome of a successful rederivation: the schedule
// recovered from ciphertext+plaintext, and the plaintext's canonical
// SHA-256 identity (spec.md §4.7 step 5).
type Result struct {
	Schedule    *wheel.Schedule
	PlainSHA256 string
}

// Sha256Hex returns the lowercase hex SHA-256 digest of a letter
// sequence's canonical uppercase byte form.
func Sha256Hex(letters []alphabet.Letter) string {
	sum := sha256.Sum256([]byte(alphabet.Text(letters)))
	return hex.EncodeToString(sum[:])
}

// Rederive runs spec.md §4.7's procedure:
//
//  1. build an empty schedule of the given shape;
//  2. treat every (i, plaintext[i]) pair as an anchor and force it;
//  3. require every addressed slot to end up set;
//  4. re-encrypt plaintext and require the result equals ciphertext
//     exactly;
//  5. compute SHA-256 over plaintext.
//
// If wantSHA256 is non-empty, it is compared against the recomputed
// digest and a mismatch is reported as faults.MismatchOnRederivation,
// exactly as spec.md's success criterion requires.
func Rederive(shapes [partition.NumClasses]wheel.Shape, ciphertext, plaintext []alphabet.Letter, wantSHA256 string) (*Result, error) {
	if len(ciphertext) != partition.MessageLength || len(plaintext) != partition.MessageLength {
		return nil, &faults.InputMalformed{Reason: "ciphertext and plaintext must both be exactly 97 letters"}
	}

	sch, err := wheel.NewScheduleFromShape(shapes)
	if err != nil {
		return nil, err
	}

	anchors := make([]anchor.Anchor, partition.MessageLength)
	for i, p := range plaintext {
		anchors[i] = anchor.Anchor{Start: i, Text: []alphabet.Letter{p}}
	}

	if err := anchor.Force(sch, ciphertext, anchors); err != nil {
		return nil, err
	}

	// Every index 0..96 was just forced as its own anchor, so every
	// slot any index addresses is now set; re-encrypting cannot hit
	// faults.IncompleteSchedule unless the forcer above has a bug.
	reencrypted, err := engine.Encrypt(sch, plaintext)
	if err != nil {
		return nil, err
	}

	for i := range reencrypted {
		if reencrypted[i] != ciphertext[i] {
			return nil, &faults.MismatchOnRederivation{
				Index:    i,
				WantByte: ciphertext[i].Byte(),
				GotByte:  reencrypted[i].Byte(),
			}
		}
	}

	derived := Sha256Hex(plaintext)
	if wantSHA256 != "" && wantSHA256 != derived {
		return nil, &faults.MismatchOnRederivation{
			ShaMismatch:   true,
			WantSHA256:    wantSHA256,
			DerivedSHA256: derived,
		}
	}

	return &Result{Schedule: sch, PlainSHA256: derived}, nil
}
