package alphabet

// Family is a closed tagged sum of the three classical cipher variants
// this module supports. Dispatch on Family is always a three-way match,
// never subtype polymorphism — see DESIGN.md.
type Family uint8

const (
	// Vigenere: E(P,K) = (P+K) mod 26, D(C,K) = (C-K) mod 26.
	Vigenere Family = iota
	// Beaufort: E(P,K) = (K-P) mod 26, D(C,K) = (K-C) mod 26.
	Beaufort
	// VariantBeaufort: E(P,K) = (P-K) mod 26, D(C,K) = (C+K) mod 26.
	VariantBeaufort
)

// String implements fmt.Stringer with the canonical tag used in the proof
// digest (§4.6 of spec.md).
func (f Family) String() string {
	switch f {
	case Vigenere:
		return "vigenere"
	case Beaufort:
		return "beaufort"
	case VariantBeaufort:
		return "variant_beaufort"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of String, used when reading a proof digest.
func ParseFamily(s string) (Family, bool) {
	switch s {
	case "vigenere":
		return Vigenere, true
	case "beaufort":
		return Beaufort, true
	case "variant_beaufort":
		return VariantBeaufort, true
	default:
		return 0, false
	}
}

// Valid reports whether f is one of the three known family tags.
func (f Family) Valid() bool {
	switch f {
	case Vigenere, Beaufort, VariantBeaufort:
		return true
	default:
		return false
	}
}

// Encrypt applies the family's encryption rule E(P,K).
func (f Family) Encrypt(p, k Letter) Letter {
	switch f {
	case Vigenere:
		return Add(p, k)
	case Beaufort:
		return Sub(k, p)
	case VariantBeaufort:
		return Sub(p, k)
	default:
		panic("alphabet: unknown cipher family")
	}
}

// Decrypt applies the family's decryption rule D(C,K).
func (f Family) Decrypt(c, k Letter) Letter {
	switch f {
	case Vigenere:
		return Sub(c, k)
	case Beaufort:
		return Sub(k, c)
	case VariantBeaufort:
		return Add(c, k)
	default:
		panic("alphabet: unknown cipher family")
	}
}

// ResidueForAnchor computes the unique residue K such that
// f.Decrypt(c, K) == p, i.e. the key letter forced by an anchor
// plaintext letter p at a ciphertext letter c. This is the inverse used
// by the anchor forcer (C4).
func (f Family) ResidueForAnchor(c, p Letter) Letter {
	switch f {
	case Vigenere:
		// D(C,K) = C-K = P  =>  K = C-P
		return Sub(c, p)
	case Beaufort:
		// D(C,K) = K-C = P  =>  K = P+C
		return Add(p, c)
	case VariantBeaufort:
		// D(C,K) = C+K = P  =>  K = P-C
		return Sub(p, c)
	default:
		panic("alphabet: unknown cipher family")
	}
}

// RequiresOptionA reports whether this family is subject to the
// Option-A non-triviality rule (C5): K != 0 at anchor slots. Beaufort is
// exempt, as spec.md §3/§4.4 mandate.
func (f Family) RequiresOptionA() bool {
	switch f {
	case Vigenere, VariantBeaufort:
		return true
	case Beaufort:
		return false
	default:
		panic("alphabet: unknown cipher family")
	}
}
