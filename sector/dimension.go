// SPDX-License-Identifier: MIT
// Package: fermibasis/sector
//
// dimension.go — exact combinatorial Hilbert-space dimension.

package sector

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// maxShift is the largest mode count whose full space 2^modes fits in uint64.
const maxShift = 63

// Validate checks every sector of s against an N-site lattice of the given
// species: counts in [0, N], and no down-spin count on spinless lattices.
func (s Sectors) Validate(n int, species Species) error {
	for _, c := range s.counts {
		if species == Spinless && c.Down != 0 {
			return errors.Wrapf(ErrMalformedSector, "spinless lattice got pair %v", c)
		}
		if c.Up < 0 || c.Up > n || c.Down < 0 || c.Down > n {
			return errors.Wrapf(ErrSectorOutOfRange, "sector %v on N=%d (want 0 <= n <= N)", c, n)
		}
	}

	return nil
}

// Binomial returns C(n, k) exactly; ok is false when it overflows uint64.
// Out-of-range k yields 0.
func Binomial(n, k int) (v uint64, ok bool) {
	if k < 0 || k > n {
		return 0, true
	}
	b := new(big.Int).Binomial(int64(n), int64(k))
	if !b.IsUint64() {
		return 0, false
	}

	return b.Uint64(), true
}

// Dimension returns the exact number of Fock states of an N-site lattice in
// the given sectors (2^N or 4^N without conservation).
//
// Complexity: O(|sectors|·N) big-integer work.
func Dimension(n int, species Species, s Sectors) (uint64, error) {
	if n <= 0 {
		return 0, errors.Wrapf(ErrBadSize, "N=%d", n)
	}
	if err := s.Validate(n, species); err != nil {
		return 0, err
	}

	if !s.Conserved() {
		modes := species.Modes(n)
		if modes > maxShift {
			return 0, errors.Wrapf(ErrDimensionOverflow, "%s N=%d", species, n)
		}

		return uint64(1) << uint(modes), nil
	}

	total := new(big.Int)
	for _, c := range s.counts {
		term := new(big.Int).Binomial(int64(n), int64(c.Up))
		if species == Spinful {
			term.Mul(term, new(big.Int).Binomial(int64(n), int64(c.Down)))
		}
		total.Add(total, term)
	}
	if !total.IsUint64() {
		return 0, errors.Wrapf(ErrDimensionOverflow, "%s N=%d sectors=%v", species, n, s)
	}

	return total.Uint64(), nil
}
