// SPDX-License-Identifier: MIT
// Package: fermibasis/sector
//
// types.go — species and particle-sector descriptions.

package sector

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Species selects one or two fermion flavours per site.
type Species uint8

const (
	// Spinless lattices carry one fermion mode per site (sps = 2).
	Spinless Species = iota
	// Spinful lattices carry an up and a down mode per site.
	Spinful
)

// String implements fmt.Stringer.
func (s Species) String() string {
	switch s {
	case Spinless:
		return "spinless"
	case Spinful:
		return "spinful"
	}

	return fmt.Sprintf("Species(%d)", uint8(s))
}

// ParseSpecies accepts "spinless" or "spinful".
func ParseSpecies(s string) (Species, error) {
	switch s {
	case "spinless", "":
		return Spinless, nil
	case "spinful":
		return Spinful, nil
	}

	return 0, errors.Wrapf(ErrMalformedSector, "unknown species %q", s)
}

// Modes returns the number of fermion modes on an N-site lattice.
func (s Species) Modes(n int) int {
	if s == Spinful {
		return 2 * n
	}

	return n
}

// Count is one particle-number sector. Spinless sectors use Up only.
type Count struct {
	Up   int
	Down int
}

// String renders spinless-looking counts as "Nf" and pairs as "(Nu,Nd)".
func (c Count) String() string {
	return fmt.Sprintf("(%d,%d)", c.Up, c.Down)
}

// Total returns Up+Down.
func (c Count) Total() int { return c.Up + c.Down }

// Sectors is either "no conservation" or a union of particle-number sectors.
// The zero value means no conservation.
type Sectors struct {
	counts []Count
}

// None disables particle-number conservation.
func None() Sectors { return Sectors{} }

// Fixed is a union of spinless sectors Nf ∈ counts.
func Fixed(counts ...int) Sectors {
	cs := make([]Count, len(counts))
	for i, nf := range counts {
		cs[i] = Count{Up: nf}
	}

	return Sectors{counts: cs}
}

// Pairs is a union of spinful sectors (Nup, Ndown).
func Pairs(pairs ...Count) Sectors {
	return Sectors{counts: append([]Count(nil), pairs...)}
}

// Conserved reports whether particle number is restricted at all.
func (s Sectors) Conserved() bool { return len(s.counts) > 0 }

// Counts returns a copy of the sectors in the union.
func (s Sectors) Counts() []Count { return append([]Count(nil), s.counts...) }

// String renders the union, or "none".
func (s Sectors) String() string {
	if !s.Conserved() {
		return "none"
	}

	return fmt.Sprint(s.counts)
}
