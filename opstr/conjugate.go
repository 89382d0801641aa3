// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// conjugate.go — Hermitian adjoint of a term.

package opstr

import "math/cmplx"

// HermitianConjugate returns the canonicalized adjoint of t:
// (J·A₀A₁…A_k)† = J*·A_k†…A₁†A₀†.
//
// Creation and annihilation swap, I/n/z are self-adjoint, the product order
// reverses and the coefficient is conjugated. The result passes through
// Canonicalize, so applying HermitianConjugate twice yields Canonicalize(t).
func HermitianConjugate(t Term) (Term, error) {
	kinds, err := parseTerm(t)
	if err != nil {
		return Term{}, err
	}

	k := len(kinds)
	adj := make([]Kind, k)
	sites := make([]int, k)
	for i, kind := range kinds {
		adj[k-1-i] = kind.Adjoint()
		sites[k-1-i] = t.Sites[i]
	}

	return Canonicalize(Term{Ops: fromKinds(adj), Sites: sites, Coeff: cmplx.Conj(t.Coeff)})
}
