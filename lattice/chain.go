// SPDX-License-Identifier: MIT
// Package: fermibasis/lattice
//
// chain.go — one-dimensional chains.
//
// Contract:
//   • L ≥ 1 for maps; L ≥ 2 for bonds (else ErrTooFewSites).
//   • Bonds are emitted as (i, i+1) for ascending i; the periodic bond
//     (L−1, 0) closes the ring when periodic and L ≥ 3.
//
// Complexity: O(L) time and space.

package lattice

const (
	methodChainTranslation = "ChainTranslation"
	methodChainParity      = "ChainParity"
	methodChainBonds       = "ChainBonds"

	minMapSites  = 1
	minBondSites = 2
	minRingSites = 3
)

// Bond is an ordered pair of sites.
type Bond struct {
	I, J int
}

// ChainTranslation returns the map i → (i+1) mod L.
func ChainTranslation(l int) ([]int, error) {
	if l < minMapSites {
		return nil, latticeErrorf(ErrTooFewSites, methodChainTranslation, "L=%d < %d", l, minMapSites)
	}
	m := make([]int, l)
	for i := range m {
		m[i] = (i + 1) % l
	}

	return m, nil
}

// ChainParity returns the reflection i → L−1−i.
func ChainParity(l int) ([]int, error) {
	if l < minMapSites {
		return nil, latticeErrorf(ErrTooFewSites, methodChainParity, "L=%d < %d", l, minMapSites)
	}
	m := make([]int, l)
	for i := range m {
		m[i] = l - 1 - i
	}

	return m, nil
}

// ChainBonds returns the nearest-neighbour bonds of an L-site chain.
func ChainBonds(l int, periodic bool) ([]Bond, error) {
	if l < minBondSites {
		return nil, latticeErrorf(ErrTooFewSites, methodChainBonds, "L=%d < %d", l, minBondSites)
	}

	bonds := make([]Bond, 0, l)
	for i := 0; i+1 < l; i++ {
		bonds = append(bonds, Bond{I: i, J: i + 1})
	}
	if periodic && l >= minRingSites {
		bonds = append(bonds, Bond{I: l - 1, J: 0})
	}

	return bonds, nil
}
