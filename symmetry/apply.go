// SPDX-License-Identifier: MIT
// Package: fermibasis/symmetry
//
// apply.go — action of a site map on an operator term.

package symmetry

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/opstr"
)

// Apply maps every operator of t to the image of its site under m.
//
// On a population-inverted source site i:
//   - + and − swap, with a factor (−1)^i (c†_i → (−1)^i c_j);
//   - z flips sign (n − ½ → ½ − n);
//   - I is unchanged;
//   - n has no single-term image (n → 1 − n): ErrNotRepresentable.
//
// The result keeps the input operator order and is not canonicalized.
// t must be separator-free with sites in [0, m.Len()).
func Apply(m Map, t opstr.Term) (opstr.Term, error) {
	if err := opstr.Validate(t, m.Len()); err != nil {
		return opstr.Term{}, err
	}
	kinds, err := t.Kinds()
	if err != nil {
		return opstr.Term{}, err
	}

	var ops strings.Builder
	sites := make([]int, len(kinds))
	coeff := t.Coeff
	for j, k := range kinds {
		src := t.Sites[j]
		dst, inverted := m.Target(src)
		sites[j] = dst
		if inverted {
			switch k {
			case opstr.Create, opstr.Annihilate:
				k = k.Adjoint()
				if src%2 == 1 {
					coeff = -coeff
				}
			case opstr.NumberShifted:
				coeff = -coeff
			case opstr.Number:
				return opstr.Term{}, errors.Wrapf(ErrNotRepresentable, "%v: 'n' on inverted site %d", t, src)
			}
		}
		ops.WriteRune(k.Rune())
	}

	return opstr.Term{Ops: ops.String(), Sites: sites, Coeff: coeff}, nil
}
