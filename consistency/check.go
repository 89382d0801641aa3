// SPDX-License-Identifier: MIT
// Package: fermibasis/consistency
//
// check.go — symmetry consistency of a term list.

package consistency

import (
	"math/cmplx"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/symmetry"
)

// Check applies every block to every declared term and reports the blocks
// under which the term list is not invariant.
//
// Terms must be separator-free (advanced form for spinful lattices).
//
// Complexity: O(B·T·k²) for B blocks, T terms of k operators.
func Check(blocks []symmetry.Block, terms []opstr.Term, opts ...Option) (Report, error) {
	cfg := config{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	declared, err := collect(terms, cfg.eps)
	if err != nil {
		return nil, err
	}

	report := Report{}
	for _, b := range blocks {
		d, err := checkBlock(b, declared, cfg.eps)
		if err != nil {
			return nil, errors.Wrapf(err, "block %q", b.Name)
		}
		if !d.Empty() {
			report[b.Name] = d
		}
	}

	return report, nil
}

// termSet is an insertion-ordered map of canonical terms by Key.
type termSet struct {
	keys  []string
	terms map[string]opstr.Term
}

// collect canonicalizes terms and sums coefficients of equal operator
// content. Vanishing and cancelled terms are dropped.
func collect(terms []opstr.Term, eps float64) (termSet, error) {
	acc := termSet{terms: make(map[string]opstr.Term, len(terms))}
	for i, t := range terms {
		c, err := opstr.Canonicalize(t)
		if err != nil {
			return termSet{}, errors.Wrapf(err, "term %d", i)
		}
		if !opstr.IsPossiblyNonzero(c) {
			continue
		}
		key := c.Key()
		if prev, ok := acc.terms[key]; ok {
			prev.Coeff += c.Coeff
			acc.terms[key] = prev
			continue
		}
		acc.keys = append(acc.keys, key)
		acc.terms[key] = c
	}

	out := termSet{terms: make(map[string]opstr.Term, len(acc.keys))}
	for _, key := range acc.keys {
		t := acc.terms[key]
		if cmplx.Abs(t.Coeff) <= eps {
			continue
		}
		out.keys = append(out.keys, key)
		out.terms[key] = t
	}

	return out, nil
}

func checkBlock(b symmetry.Block, declared termSet, eps float64) (Diagnostics, error) {
	var d Diagnostics
	for _, key := range declared.keys {
		t := declared.terms[key]
		img, err := symmetry.Apply(b.Map, t)
		if errors.Is(err, symmetry.ErrNotRepresentable) {
			d.Odd = append(d.Odd, t)
			continue
		}
		if err != nil {
			return Diagnostics{}, err
		}
		if img, err = opstr.Canonicalize(img); err != nil {
			return Diagnostics{}, err
		}

		got, ok := declared.terms[img.Key()]
		switch {
		case !ok:
			d.Missing = append(d.Missing, img)
		case !opstr.CoeffClose(img.Coeff, got.Coeff, eps):
			d.Odd = append(d.Odd, t)
		}
	}

	return d, nil
}
