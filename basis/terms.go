// SPDX-License-Identifier: MIT
// Package: fermibasis/basis
//
// terms.go — term normalization in the encoding of the basis.

package basis

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/consistency"
	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/sector"
	"github.com/katalvlaran/fermibasis/spinful"
)

// simple reports whether terms carry the '|' species separator.
func (b *Basis) simple() bool {
	return b.species == sector.Spinful && b.mode == spinful.Simple
}

// Validate checks t against the lattice in the encoding of the basis.
func (b *Basis) Validate(t opstr.Term) error {
	if !b.simple() {
		return opstr.Validate(t, b.Modes())
	}
	st, err := spinful.Split(t)
	if err != nil {
		return err
	}

	return st.Validate(b.n)
}

// Canonicalize validates t and returns it normal-ordered, in the encoding it
// was given in.
func (b *Basis) Canonicalize(t opstr.Term) (opstr.Term, error) {
	if err := b.Validate(t); err != nil {
		return opstr.Term{}, err
	}
	if b.simple() {
		return spinful.Canonicalize(t)
	}

	return opstr.Canonicalize(t)
}

// HermitianConjugate validates t and returns its canonical adjoint, in the
// encoding it was given in.
func (b *Basis) HermitianConjugate(t opstr.Term) (opstr.Term, error) {
	if err := b.Validate(t); err != nil {
		return opstr.Term{}, err
	}
	if b.simple() {
		return spinful.HermitianConjugate(t)
	}

	return opstr.HermitianConjugate(t)
}

// IsPossiblyNonzero validates t and applies Pauli exclusion.
func (b *Basis) IsPossiblyNonzero(t opstr.Term) (bool, error) {
	if err := b.Validate(t); err != nil {
		return false, err
	}

	return opstr.IsPossiblyNonzero(t), nil
}

// PrepareTerm turns t into the canonical separator-free term over Modes()
// sites: translate (simple spinful) → range check → Pauli filter →
// canonicalize. ok is false when t vanishes identically.
func (b *Basis) PrepareTerm(t opstr.Term) (out opstr.Term, ok bool, err error) {
	adv := t
	if b.simple() {
		if adv, err = spinful.TranslateTerm(b.n, t); err != nil {
			return opstr.Term{}, false, err
		}
	} else if err = opstr.Validate(t, b.Modes()); err != nil {
		return opstr.Term{}, false, err
	}

	if !opstr.IsPossiblyNonzero(adv) {
		return opstr.Term{}, false, nil
	}
	if out, err = opstr.Canonicalize(adv); err != nil {
		return opstr.Term{}, false, err
	}

	return out, true, nil
}

// PrepareTerms applies PrepareTerm to every term and drops vanishing ones.
// Errors carry the index of the offending term.
func (b *Basis) PrepareTerms(terms []opstr.Term) ([]opstr.Term, error) {
	out := make([]opstr.Term, 0, len(terms))
	for i, t := range terms {
		p, ok, err := b.PrepareTerm(t)
		if err != nil {
			return nil, errors.Wrapf(err, "term %d", i)
		}
		if ok {
			out = append(out, p)
		}
	}

	return out, nil
}

// CheckSymmetry checks static and dynamic operator lists against every
// block. Inconsistent blocks are reported and logged at warn level; only
// malformed terms are errors.
func (b *Basis) CheckSymmetry(static, dynamic []opstr.Term) (staticReport, dynamicReport consistency.Report, err error) {
	if staticReport, err = b.checkList("static", static); err != nil {
		return nil, nil, err
	}
	if dynamicReport, err = b.checkList("dynamic", dynamic); err != nil {
		return nil, nil, err
	}

	return staticReport, dynamicReport, nil
}

func (b *Basis) checkList(list string, terms []opstr.Term) (consistency.Report, error) {
	prepared, err := b.PrepareTerms(terms)
	if err != nil {
		return nil, errors.Wrapf(err, "%s list", list)
	}
	report, err := consistency.Check(b.blocks, prepared, consistency.WithEpsilon(b.eps))
	if err != nil {
		return nil, errors.Wrapf(err, "%s list", list)
	}

	for _, name := range report.Blocks() {
		d := report[name]
		b.log.Warnw("operator list is not symmetric",
			"list", list,
			"block", name,
			"odd", len(d.Odd),
			"missing", len(d.Missing))
	}

	return report, nil
}
