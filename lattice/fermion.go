// SPDX-License-Identifier: MIT
// Package: fermibasis/lattice
//
// fermion.go — internal (non-spatial) fermionic maps and coupling expansion.

package lattice

import (
	"github.com/katalvlaran/fermibasis/opstr"
)

const (
	methodParticleHole  = "ParticleHole"
	methodSpinInversion = "SpinInversion"
	methodBondTerms     = "BondTerms"
	methodSiteTerms     = "SiteTerms"
)

// inverted returns i → −(i+1) on n sites.
func inverted(method string, n int) ([]int, error) {
	if n < minMapSites {
		return nil, latticeErrorf(ErrTooFewSites, method, "n=%d < %d", n, minMapSites)
	}
	m := make([]int, n)
	for i := range m {
		m[i] = -(i + 1)
	}

	return m, nil
}

// ParticleHole returns the population-inverting map on n modes: L sites of
// a spinless lattice, or 2L modes of an advanced spinful one.
func ParticleHole(n int) ([]int, error) { return inverted(methodParticleHole, n) }

// SpinInversion returns the simple spinful map exchanging up and down on
// every one of L sites. Its values coincide with ParticleHole(L); the
// encoding of the basis gives them their meaning.
func SpinInversion(l int) ([]int, error) { return inverted(methodSpinInversion, l) }

// BondTerms places a two-site operator string on every bond with the given
// coefficient. ops may carry a species separator ("+|-").
func BondTerms(ops string, coeff complex128, bonds []Bond) ([]opstr.Term, error) {
	if n := (opstr.Term{Ops: ops}).Len(); n != 2 {
		return nil, latticeErrorf(ErrBondArity, methodBondTerms, "%q acts on %d sites", ops, n)
	}
	terms := make([]opstr.Term, len(bonds))
	for k, b := range bonds {
		terms[k] = opstr.NewTerm(ops, coeff, b.I, b.J)
	}

	return terms, nil
}

// SiteTerms places a one-site operator string on sites 0..n-1.
func SiteTerms(ops string, coeff complex128, n int) ([]opstr.Term, error) {
	if k := (opstr.Term{Ops: ops}).Len(); k != 1 {
		return nil, latticeErrorf(ErrBondArity, methodSiteTerms, "%q acts on %d sites", ops, k)
	}
	terms := make([]opstr.Term, n)
	for i := range terms {
		terms[i] = opstr.NewTerm(ops, coeff, i)
	}

	return terms, nil
}
