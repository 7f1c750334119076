// Package anchor implements the anchor-forcing solver (C4) and the
// independent Option-A audit (C5) over a wheel.Schedule.
package anchor

import (
	"sort"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
)

// Anchor is a known plaintext substring at a known starting index
// (spec.md §3). It expands to (index, letter) pairs at start, start+1, ...
type Anchor struct {
	Start int
	Text  []alphabet.Letter
}

// NewAnchor parses text (A..Z/a..z) into an Anchor starting at start,
// returning faults.InputMalformed if the text contains a non-letter byte
// or would extend past partition.MessageLength-1.
func NewAnchor(start int, text string) (Anchor, error) {
	letters, err := alphabet.ParseText(text)
	if err != nil {
		return Anchor{}, &faults.InputMalformed{Reason: err.Error()}
	}
	if start < 0 || start+len(letters) > partition.MessageLength {
		return Anchor{}, &faults.InputMalformed{Reason: "anchor extends past index 96"}
	}
	return Anchor{Start: start, Text: letters}, nil
}

// pair is one (index, plaintext letter) obligation an anchor expands to.
type pair struct {
	index  int
	letter alphabet.Letter
}

// expand flattens a set of anchors into (index, letter) pairs, sorted by
// index (spec.md §9: "sort by (start, offset) before processing so
// diagnostics are reproducible" — sorting by absolute index is
// equivalent and simpler here since anchors do not overlap in valid
// inputs).
func expand(anchors []Anchor) []pair {
	var pairs []pair
	for _, a := range anchors {
		for offset, l := range a.Text {
			pairs = append(pairs, pair{index: a.Start + offset, letter: l})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].index < pairs[j].index })
	return pairs
}
