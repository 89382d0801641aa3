// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// canonicalize.go — normal ordering of a term by site index.

package opstr

// Canonicalize returns t with its operators in non-decreasing site order.
//
// Algorithm (stable bubble sort):
//  1. Pair each operator with its site.
//  2. Sweep adjacent pairs; swap when the left site is strictly larger.
//     Operators on the same site are never swapped, so their input order
//     (which is physically meaningful: c†c ≠ cc†) survives.
//  3. Each swap of two fermionic operators (+/−) flips the sign; swaps that
//     involve I, n or z do not, since those are parity-even.
//  4. Stop after a sweep without swaps; multiply the coefficient by the sign.
//
// An empty term is returned unchanged. Terms containing '|' must be split
// into species first (ErrStraySeparator).
//
// Complexity: O(k²) time for k operators, O(k) space.
func Canonicalize(t Term) (Term, error) {
	kinds, err := parseTerm(t)
	if err != nil {
		return Term{}, err
	}
	if len(kinds) == 0 {
		return t.Clone(), nil
	}

	sites := append([]int(nil), t.Sites...)
	sign := 1.0
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i+1 < len(sites); i++ {
			if sites[i] <= sites[i+1] {
				continue
			}
			sites[i], sites[i+1] = sites[i+1], sites[i]
			kinds[i], kinds[i+1] = kinds[i+1], kinds[i]
			swapped = true
			if kinds[i].IsFermionic() && kinds[i+1].IsFermionic() {
				sign = -sign
			}
		}
	}

	return Term{Ops: fromKinds(kinds), Sites: sites, Coeff: t.Coeff * complex(sign, 0)}, nil
}

// IsCanonical reports whether the sites of t are already non-decreasing.
func IsCanonical(t Term) bool {
	for i := 1; i < len(t.Sites); i++ {
		if t.Sites[i-1] > t.Sites[i] {
			return false
		}
	}

	return true
}
