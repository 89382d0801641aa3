// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// validate.go — structural checks shared by every term operation.
//
// Validation order (first failure wins, tested):
//   separator → unknown operator → operator/site count → site range.

package opstr

// parseTerm checks the shape of a separator-free term and returns its kinds.
// Sites must be non-negative; the upper bound is lattice-specific (Validate).
func parseTerm(t Term) ([]Kind, error) {
	kinds, err := t.Kinds()
	if err != nil {
		return nil, err
	}
	if len(kinds) != len(t.Sites) {
		return nil, termErrorf(ErrLengthMismatch, t, "%d operators, %d sites", len(kinds), len(t.Sites))
	}
	for _, s := range t.Sites {
		if s < 0 {
			return nil, termErrorf(ErrSiteOutOfRange, t, "site %d < 0", s)
		}
	}

	return kinds, nil
}

// Validate checks that t is a well-formed separator-free term whose sites lie
// in [0, nSites).
func Validate(t Term, nSites int) error {
	if _, err := parseTerm(t); err != nil {
		return err
	}
	for _, s := range t.Sites {
		if s >= nSites {
			return termErrorf(ErrSiteOutOfRange, t, "site %d >= %d", s, nSites)
		}
	}

	return nil
}
