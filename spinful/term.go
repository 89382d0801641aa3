// SPDX-License-Identifier: MIT
// Package: fermibasis/spinful
//
// term.go — spinful term as a pair of spinless sub-terms.

package spinful

import (
	"math/cmplx"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/opstr"
)

// Mode selects the encoding of spinful terms and maps.
type Mode uint8

const (
	// Simple shares sites between species and separates them with '|'.
	Simple Mode = iota
	// Advanced concatenates species into 2N modes.
	Advanced
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Advanced {
		return "advanced"
	}

	return "simple"
}

// Term is a spinful operator term: Up and Down act on sites 0..N-1 of their
// species and carry unit coefficients; Coeff is the overall coefficient.
type Term struct {
	Up    opstr.Term
	Down  opstr.Term
	Coeff complex128
}

// Split parses a simple-mode term "up|down".
//
// Contract: exactly one separator (ErrSeparator) and one site per operator
// (opstr.ErrLengthMismatch). Operator characters are checked later by the
// spinless algorithms.
func Split(t opstr.Term) (Term, error) {
	if c := strings.Count(t.Ops, string(opstr.Separator)); c != 1 {
		return Term{}, errors.Wrapf(ErrSeparator, "%v has %d separators", t, c)
	}
	if t.Len() != len(t.Sites) {
		return Term{}, errors.Wrapf(opstr.ErrLengthMismatch, "%v: %d operators, %d sites", t, t.Len(), len(t.Sites))
	}

	left, right, _ := strings.Cut(t.Ops, string(opstr.Separator))
	k := len([]rune(left))

	return Term{
		Up:    opstr.NewTerm(left, 1, t.Sites[:k]...),
		Down:  opstr.NewTerm(right, 1, t.Sites[k:]...),
		Coeff: t.Coeff,
	}, nil
}

// Join renders t back into simple form "up|down".
func (t Term) Join() opstr.Term {
	sites := make([]int, 0, len(t.Up.Sites)+len(t.Down.Sites))
	sites = append(sites, t.Up.Sites...)
	sites = append(sites, t.Down.Sites...)

	return opstr.Term{
		Ops:   t.Up.Ops + string(opstr.Separator) + t.Down.Ops,
		Sites: sites,
		Coeff: t.Coeff,
	}
}

// Advanced renders t over 2N concatenated modes: down sites shift by +n.
func (t Term) Advanced(n int) opstr.Term {
	sites := make([]int, 0, len(t.Up.Sites)+len(t.Down.Sites))
	sites = append(sites, t.Up.Sites...)
	for _, s := range t.Down.Sites {
		sites = append(sites, s+n)
	}

	return opstr.Term{Ops: t.Up.Ops + t.Down.Ops, Sites: sites, Coeff: t.Coeff}
}

// Validate checks both sub-terms against an N-site lattice.
func (t Term) Validate(n int) error {
	if err := opstr.Validate(t.Up, n); err != nil {
		return errors.Wrap(err, "up species")
	}
	if err := opstr.Validate(t.Down, n); err != nil {
		return errors.Wrap(err, "down species")
	}

	return nil
}

// Canonicalize sorts each species independently; the signs of both sorts
// multiply the overall coefficient.
func (t Term) Canonicalize() (Term, error) {
	up, err := opstr.Canonicalize(t.Up)
	if err != nil {
		return Term{}, errors.Wrap(err, "up species")
	}
	down, err := opstr.Canonicalize(t.Down)
	if err != nil {
		return Term{}, errors.Wrap(err, "down species")
	}

	return normalized(up, down, t.Coeff), nil
}

// HermitianConjugate conjugates each species independently and conjugates
// the overall coefficient once.
func (t Term) HermitianConjugate() (Term, error) {
	up, err := opstr.HermitianConjugate(unit(t.Up))
	if err != nil {
		return Term{}, errors.Wrap(err, "up species")
	}
	down, err := opstr.HermitianConjugate(unit(t.Down))
	if err != nil {
		return Term{}, errors.Wrap(err, "down species")
	}

	return normalized(up, down, cmplx.Conj(t.Coeff)), nil
}

// IsPossiblyNonzero applies Pauli exclusion per species.
func (t Term) IsPossiblyNonzero() bool {
	return opstr.IsPossiblyNonzero(t.Up) && opstr.IsPossiblyNonzero(t.Down)
}

// normalized folds the sub-term coefficients (signs) into coeff.
func normalized(up, down opstr.Term, coeff complex128) Term {
	coeff *= up.Coeff * down.Coeff
	up.Coeff, down.Coeff = 1, 1

	return Term{Up: up, Down: down, Coeff: coeff}
}

func unit(t opstr.Term) opstr.Term {
	u := t.Clone()
	u.Coeff = 1

	return u
}

// Canonicalize canonicalizes a simple-mode term "up|down".
func Canonicalize(t opstr.Term) (opstr.Term, error) {
	st, err := Split(t)
	if err != nil {
		return opstr.Term{}, err
	}
	if st, err = st.Canonicalize(); err != nil {
		return opstr.Term{}, err
	}

	return st.Join(), nil
}

// HermitianConjugate returns the canonical adjoint of a simple-mode term.
func HermitianConjugate(t opstr.Term) (opstr.Term, error) {
	st, err := Split(t)
	if err != nil {
		return opstr.Term{}, err
	}
	if st, err = st.HermitianConjugate(); err != nil {
		return opstr.Term{}, err
	}

	return st.Join(), nil
}

// IsPossiblyNonzero applies Pauli exclusion to a simple-mode term.
func IsPossiblyNonzero(t opstr.Term) (bool, error) {
	st, err := Split(t)
	if err != nil {
		return false, err
	}

	return st.IsPossiblyNonzero(), nil
}
