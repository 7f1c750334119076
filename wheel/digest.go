package wheel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/partition"
)

// ClassRecord is the serialized form of one wheel, per spec.md §4.6: its
// shape, its residues (nulls allowed), the redundant 'A'..'Z'/'.' string
// form, and the present-slots bitmask.
type ClassRecord struct {
	ClassID           int    `json:"class_id"`
	Family            string `json:"family"`
	L                 int    `json:"l"`
	Phase             int    `json:"phase"`
	Residues          []*int `json:"residues"`
	ResiduesAlpha     string `json:"residues_alpha"`
	PresentSlotsMask  string `json:"present_slots_mask"`
	AddressedSlotMask string `json:"addressed_slots_mask"`
}

// Digest is the top-level proof digest: one ClassRecord per class, plus
// the derivation_verified flag spec.md §6 describes.
type Digest struct {
	Classes            [partition.NumClasses]ClassRecord `json:"classes"`
	DerivationVerified bool                               `json:"derivation_verified"`
}

// ToDigest serializes s into its proof-digest form. derivationVerified
// should be true only once a caller has actually run verify.Rederive and
// obtained a matching SHA-256 (spec.md §6).
func (s *Schedule) ToDigest(derivationVerified bool) *Digest {
	d := &Digest{DerivationVerified: derivationVerified}
	for c, w := range s.wheels {
		class := partition.Class(c)
		addressed := w.AddressedMask(class)

		residues := make([]*int, w.L)
		alphaBuf := make([]byte, w.L)
		presentBuf := make([]byte, w.L)
		addressedBuf := make([]byte, w.L)

		for slotIdx := 0; slotIdx < w.L; slotIdx++ {
			if k, ok := w.At(slotIdx); ok {
				v := int(k)
				residues[slotIdx] = &v
				alphaBuf[slotIdx] = k.Byte()
				presentBuf[slotIdx] = '1'
			} else {
				alphaBuf[slotIdx] = '.'
				presentBuf[slotIdx] = '0'
			}
			if addressed[slotIdx] {
				addressedBuf[slotIdx] = '1'
			} else {
				addressedBuf[slotIdx] = '0'
			}
		}

		d.Classes[c] = ClassRecord{
			ClassID:           c,
			Family:            w.Family.String(),
			L:                 w.L,
			Phase:             w.Phase,
			Residues:          residues,
			ResiduesAlpha:     string(alphaBuf),
			PresentSlotsMask:  string(presentBuf),
			AddressedSlotMask: string(addressedBuf),
		}
	}
	return d
}

// FromDigest rebuilds a Schedule from a previously serialized Digest,
// validating shapes and cross-checking that residues_alpha and the
// present_slots_mask agree with the residues array (human-readable
// parity, per spec.md §4.6), and that every addressed slot is present.
func FromDigest(d *Digest) (*Schedule, error) {
	var shapes [partition.NumClasses]Shape
	for c, rec := range d.Classes {
		fam, ok := alphabet.ParseFamily(rec.Family)
		if !ok {
			return nil, fmt.Errorf("wheel: class %d: unknown family tag %q", c, rec.Family)
		}
		shapes[c] = Shape{Family: fam, L: rec.L, Phase: rec.Phase}
	}

	sch, err := NewScheduleFromShape(shapes)
	if err != nil {
		return nil, err
	}

	for c, rec := range d.Classes {
		w := sch.wheels[c]

		if len(rec.Residues) != rec.L || len(rec.ResiduesAlpha) != rec.L || len(rec.PresentSlotsMask) != rec.L {
			return nil, fmt.Errorf("wheel: class %d: residues/residues_alpha/present_slots_mask length mismatch with L=%d", c, rec.L)
		}

		for slotIdx := 0; slotIdx < rec.L; slotIdx++ {
			present := rec.PresentSlotsMask[slotIdx] == '1'
			hasValue := rec.Residues[slotIdx] != nil

			if present != hasValue {
				return nil, fmt.Errorf("wheel: class %d slot %d: present_slots_mask disagrees with residues", c, slotIdx)
			}

			if present {
				v := *rec.Residues[slotIdx]
				if v < 0 || v >= alphabet.Size {
					return nil, fmt.Errorf("wheel: class %d slot %d: residue %d out of range", c, slotIdx, v)
				}
				wantAlpha := alphabet.Letter(v).Byte()
				if rec.ResiduesAlpha[slotIdx] != wantAlpha {
					return nil, fmt.Errorf("wheel: class %d slot %d: residues_alpha %q disagrees with residues value %d", c, slotIdx, rec.ResiduesAlpha[slotIdx], v)
				}
				w.Set(slotIdx, alphabet.Letter(v))
			} else if rec.ResiduesAlpha[slotIdx] != '.' {
				return nil, fmt.Errorf("wheel: class %d slot %d: residues_alpha must be '.' for an unset slot", c, slotIdx)
			}
		}

		addressed := w.AddressedMask(partition.Class(c))
		for slotIdx, isAddressed := range addressed {
			if isAddressed && rec.PresentSlotsMask[slotIdx] != '1' {
				return nil, fmt.Errorf("wheel: class %d slot %d: addressed by some index but not present in digest", c, slotIdx)
			}
		}
	}

	return sch, nil
}

// MarshalJSON and UnmarshalJSON give Digest the plain encoding/json
// round-trip spec.md §6 calls for ("a JSON-like object... a companion
// enhanced form").
func (d *Digest) MarshalJSON() ([]byte, error) {
	type alias Digest
	return json.MarshalIndent((*alias)(d), "", "  ")
}

func (d *Digest) UnmarshalJSON(b []byte) error {
	type alias Digest
	return json.Unmarshal(b, (*alias)(d))
}

// String renders a compact, human-scannable summary of the digest, one
// line per class: "class 2: beaufort L=17 phase=0 residues=.......HELLO....."
func (d *Digest) String() string {
	var sb strings.Builder
	for _, rec := range d.Classes {
		fmt.Fprintf(&sb, "class %d: %s L=%d phase=%d residues=%s\n", rec.ClassID, rec.Family, rec.L, rec.Phase, rec.ResiduesAlpha)
	}
	return sb.String()
}
