// SPDX-License-Identifier: MIT
// Package: fermibasis/sector
//
// resolve.go — turning user particle-number inputs into Sectors.
//
// Precedence (mirrors basis construction):
//  1. Counts and Densities together ⇒ ErrConflictingSector.
//  2. Densities ⇒ one sector, Nf = int(nf·N) per species.
//  3. Counts ⇒ their union.
//  4. MaxTotal (only when 2 and 3 are absent) ⇒ UpTo.
//  5. Nothing ⇒ None.

package sector

import "github.com/cockroachdb/errors"

// NoConservation is the MaxTotal value that disables particle conservation.
const NoConservation = -1

// Request gathers the ways a caller may describe particle conservation.
type Request struct {
	// Counts is a union of absolute sectors; nil means "not given".
	Counts []Count
	// Densities holds fermions per site: one value (spinless) or two
	// values up/down (spinful).
	Densities []float64
	// MaxTotal enables the companion mode when non-nil.
	MaxTotal *int
}

// Resolve validates req against an N-site lattice and returns the sectors.
func Resolve(n int, species Species, req Request) (Sectors, error) {
	if n <= 0 {
		return Sectors{}, errors.Wrapf(ErrBadSize, "N=%d", n)
	}
	if req.Counts != nil && req.Densities != nil {
		return Sectors{}, errors.WithHint(ErrConflictingSector, "pass either particle counts or densities")
	}

	var s Sectors
	switch {
	case req.Densities != nil:
		c, err := fromDensity(n, species, req.Densities)
		if err != nil {
			return Sectors{}, err
		}
		s = Pairs(c)
	case req.Counts != nil:
		s = Pairs(req.Counts...)
	case req.MaxTotal != nil:
		var err error
		if s, err = UpTo(species, n, *req.MaxTotal); err != nil {
			return Sectors{}, err
		}
	default:
		return None(), nil
	}

	if err := s.Validate(n, species); err != nil {
		return Sectors{}, err
	}

	return s, nil
}

// fromDensity truncates nf·N toward zero, per species.
func fromDensity(n int, species Species, densities []float64) (Count, error) {
	want := 1
	if species == Spinful {
		want = 2
	}
	if len(densities) != want {
		return Count{}, errors.Wrapf(ErrMalformedSector, "%s lattice needs %d densities, got %d", species, want, len(densities))
	}

	c := Count{Up: int(densities[0] * float64(n))}
	if species == Spinful {
		c.Down = int(densities[1] * float64(n))
	}

	return c, nil
}

// UpTo expands a maximum total particle count k into the union of every
// sector with at most k particles:
//
//	spinless: Nf = 0..k
//	spinful:  (t−i, i) for t = 0..k, i = 0..t
//
// k = NoConservation disables conservation; k > N is clamped to N; any other
// negative k is rejected.
func UpTo(species Species, n, k int) (Sectors, error) {
	switch {
	case k == NoConservation:
		return None(), nil
	case k < NoConservation:
		return Sectors{}, errors.Wrapf(ErrMalformedSector,
			"max particles %d (use %d for no conservation, >= 0 otherwise)", k, NoConservation)
	case k+1 > n:
		k = n
	}

	var counts []Count
	for t := 0; t <= k; t++ {
		if species == Spinless {
			counts = append(counts, Count{Up: t})
			continue
		}
		for i := 0; i <= t; i++ {
			counts = append(counts, Count{Up: t - i, Down: i})
		}
	}

	return Sectors{counts: counts}, nil
}
