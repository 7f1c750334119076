// Package solve implements the feasibility oracle (C9): a thin, pure,
// total composition of shape validation, anchor forcing and the Option-A
// audit, used by candidate-sweep callers (see package sweep) as a
// feasibility test over many (shape, anchor) combinations.
package solve

import (
	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/anchor"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Feasible runs spec.md §4.8's composition:
//
//	Feasible(C, anchors, shape) ->
//	   Ok(partial_schedule)
//	 | OptionAViolation(details)
//	 | ResidueCollision(details)
//	 | ShapeInvalid(details)
//
// It always returns in O(|anchors|) and never panics on malformed input;
// every code path ends in exactly one of a *wheel.Schedule or an error.
func Feasible(ciphertext []alphabet.Letter, anchors []anchor.Anchor, shapes [partition.NumClasses]wheel.Shape) (*wheel.Schedule, error) {
	if len(ciphertext) != partition.MessageLength {
		return nil, &faults.InputMalformed{Reason: "ciphertext must be exactly 97 letters"}
	}

	sch, err := wheel.NewScheduleFromShape(shapes)
	if err != nil {
		return nil, err
	}

	if err := anchor.Force(sch, ciphertext, anchors); err != nil {
		return nil, err
	}

	if err := anchor.CheckOptionA(sch, anchors); err != nil {
		return nil, err
	}

	return sch, nil
}
