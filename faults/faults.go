// Package faults declares the closed set of typed verdicts the core can
// return (spec.md §7). Each kind is its own exported struct implementing
// error and carrying the structured payload a caller needs to render a
// reproducible diagnostic — never a stringly-typed "kind" field. The
// idiom is adapted from opal-lang-opal/pkgs/errors's structured,
// context-carrying DevCmdError, reshaped into one Go type per kind so
// callers can branch with errors.As instead of comparing a string tag.
package faults

import "fmt"

// InputMalformed reports that the ciphertext or an anchor's text was not
// well-formed (not 97 uppercase A..Z letters, an anchor extending past
// index 96, or non-letter anchor text).
type InputMalformed struct {
	Reason string
}

func (e *InputMalformed) Error() string {
	return fmt.Sprintf("input malformed: %s", e.Reason)
}

// ShapeInvalid reports a schedule shape whose L, phase or family tag is
// out of bounds.
type ShapeInvalid struct {
	Class  int
	Reason string
}

func (e *ShapeInvalid) Error() string {
	return fmt.Sprintf("shape invalid for class %d: %s", e.Class, e.Reason)
}

// OptionAViolation reports that an anchor would force a zero residue at
// a Vigenere or VariantBeaufort slot, which is forbidden (C5).
type OptionAViolation struct {
	Class int
	Slot  int
	Index int
}

func (e *OptionAViolation) Error() string {
	return fmt.Sprintf("option-A violation: class %d slot %d (forced by index %d) would be zero", e.Class, e.Slot, e.Index)
}

// ResidueCollision reports that two anchor positions (or an anchor and a
// prior derivation) imply different residues at the same (class, slot).
type ResidueCollision struct {
	Class         int
	Slot          int
	Existing      int
	Attempted     int
	PriorIndex    int
	ConflictIndex int
}

func (e *ResidueCollision) Error() string {
	return fmt.Sprintf("residue collision: class %d slot %d: existing=%d (from index %d) attempted=%d (from index %d)",
		e.Class, e.Slot, e.Existing, e.PriorIndex, e.Attempted, e.ConflictIndex)
}

// IncompleteSchedule reports that the engine was asked to encrypt or
// decrypt index Index, but the slot it addresses is still unset.
type IncompleteSchedule struct {
	Index int
	Class int
	Slot  int
}

func (e *IncompleteSchedule) Error() string {
	return fmt.Sprintf("incomplete schedule: index %d (class %d, slot %d) is unset", e.Index, e.Class, e.Slot)
}

// MismatchOnRederivation reports that the rederivation verifier's
// re-encryption did not reproduce the input ciphertext, or that the
// declared plaintext SHA-256 did not match the recomputed one.
type MismatchOnRederivation struct {
	Index         int
	WantByte      byte
	GotByte       byte
	ShaMismatch   bool
	WantSHA256    string
	DerivedSHA256 string
}

func (e *MismatchOnRederivation) Error() string {
	if e.ShaMismatch {
		return fmt.Sprintf("rederivation mismatch: plaintext sha256 %s != derived %s", e.WantSHA256, e.DerivedSHA256)
	}
	return fmt.Sprintf("rederivation mismatch: re-encryption at index %d produced %q, want %q", e.Index, string(e.GotByte), string(e.WantByte))
}
