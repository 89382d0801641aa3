// SPDX-License-Identifier: MIT
// Package: fermibasis/spinful
//
// translate.go — simple → advanced translation of terms and maps.

package spinful

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/symmetry"
)

// TranslateTerm rewrites a simple-mode term over 2N modes: the up part keeps
// its sites, the down part is shifted by +n and the separator is dropped.
//
// Errors: ErrSeparator (zero or several '|'), opstr.ErrLengthMismatch,
// opstr.ErrSiteOutOfRange (a side index outside [0, n)).
func TranslateTerm(n int, t opstr.Term) (opstr.Term, error) {
	st, err := Split(t)
	if err != nil {
		return opstr.Term{}, err
	}
	if err = st.Validate(n); err != nil {
		return opstr.Term{}, err
	}

	return st.Advanced(n), nil
}

// TranslateMap turns a length-n simple map into the length-2n advanced map.
//
// Algorithm:
//  1. i_map[i] = Q[i] for Q[i] ≥ 0; an entry −(j+1) means "site j of the
//     other species", so i_map[i] = j + n.
//  2. advanced = i_map ++ ((i_map + n) mod 2n): the down block is the same
//     relabelling shifted into the down range, and an up→down image becomes
//     down→up.
//
// A length-2n map is already advanced and passes through unchanged; any
// other length is ErrMapLength.
func TranslateMap(n int, q symmetry.Map) (symmetry.Map, error) {
	switch q.Len() {
	case 2 * n:
		return q, nil
	case n:
	default:
		return symmetry.Map{}, errors.Wrapf(ErrMapLength, "len %d with N=%d", q.Len(), n)
	}

	adv := make([]int, 2*n)
	for i := 0; i < n; i++ {
		site, flip := q.Target(i)
		if flip {
			site += n
		}
		adv[i] = site
		adv[n+i] = (site + n) % (2 * n)
	}

	return symmetry.NewMap(adv)
}

// SplitMap re-derives the simple map of each species block from an advanced
// map: entry i of a block is the image site of i within its species, encoded
// as −(j+1) when the image lies in the other species. For any simple q,
// SplitMap(n, TranslateMap(n, q)) returns (q, q).
//
// Advanced maps with population inversion have no simple form
// (ErrNotSimple).
func SplitMap(n int, adv symmetry.Map) (up, down symmetry.Map, err error) {
	if adv.Len() != 2*n {
		return symmetry.Map{}, symmetry.Map{}, errors.Wrapf(ErrMapLength, "len %d with N=%d", adv.Len(), n)
	}
	if adv.Kind() == symmetry.PermutationWithInversion {
		return symmetry.Map{}, symmetry.Map{}, errors.Wrap(ErrNotSimple, "population inversion")
	}

	upVals := make([]int, n)
	downVals := make([]int, n)
	for i := 0; i < n; i++ {
		u, _ := adv.Target(i)
		if u < n {
			upVals[i] = u
		} else {
			upVals[i] = -(u - n + 1)
		}
		d, _ := adv.Target(n + i)
		if d >= n {
			downVals[i] = d - n
		} else {
			downVals[i] = -(d + 1)
		}
	}

	if up, err = symmetry.NewMap(upVals); err != nil {
		return symmetry.Map{}, symmetry.Map{}, errors.Wrapf(ErrNotSimple, "up block: %v", err)
	}
	if down, err = symmetry.NewMap(downVals); err != nil {
		return symmetry.Map{}, symmetry.Map{}, errors.Wrapf(ErrNotSimple, "down block: %v", err)
	}

	return up, down, nil
}

// Normalize returns the canonical advanced form of a term given in mode:
// simple terms are translated first, advanced ones only validated.
func Normalize(mode Mode, n int, t opstr.Term) (opstr.Term, error) {
	if mode == Simple {
		var err error
		if t, err = TranslateTerm(n, t); err != nil {
			return opstr.Term{}, err
		}
	} else if err := opstr.Validate(t, 2*n); err != nil {
		return opstr.Term{}, err
	}

	return opstr.Canonicalize(t)
}
