// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// types.go — operator vocabulary and the Term value type.

package opstr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Separator splits a spinful "simple" operator string into its up-species
// and down-species parts, e.g. "+-|n".
const Separator = '|'

// Kind is one site-local operator of the fixed vocabulary.
type Kind uint8

const (
	// Identity is "I".
	Identity Kind = iota
	// Create is "+", the fermionic creation operator c†.
	Create
	// Annihilate is "-", the fermionic annihilation operator c.
	Annihilate
	// Number is "n" = c†c.
	Number
	// NumberShifted is "z" = c†c − ½, the particle-hole symmetric number operator.
	NumberShifted
)

// kindRunes is indexed by Kind.
var kindRunes = [...]rune{
	Identity:      'I',
	Create:        '+',
	Annihilate:    '-',
	Number:        'n',
	NumberShifted: 'z',
}

// ParseKind maps an operator character to its Kind.
// The separator '|' is not a Kind and is rejected like any other foreign rune.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case 'I':
		return Identity, nil
	case '+':
		return Create, nil
	case '-':
		return Annihilate, nil
	case 'n':
		return Number, nil
	case 'z':
		return NumberShifted, nil
	}

	return 0, errors.Wrapf(ErrUnrecognizedOperator, "%q", r)
}

// Rune returns the operator character of k.
func (k Kind) Rune() rune {
	if int(k) < len(kindRunes) {
		return kindRunes[k]
	}

	return '?'
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k.Rune()) }

// IsFermionic reports whether k anticommutes with other fermionic operators
// on distinct sites. Only + and − do; I, n and z are parity-even.
func (k Kind) IsFermionic() bool { return k == Create || k == Annihilate }

// Adjoint returns the Hermitian adjoint of k. Number-like operators are
// self-adjoint.
func (k Kind) Adjoint() Kind {
	switch k {
	case Create:
		return Annihilate
	case Annihilate:
		return Create
	}

	return k
}

// Term is a product of site-local operators with a complex coefficient.
//
// Ops holds one operator character per entry of Sites; spinful "simple"
// terms may additionally carry exactly one Separator, which has no site.
type Term struct {
	Ops   string
	Sites []int
	Coeff complex128
}

// NewTerm builds a Term, copying sites.
func NewTerm(ops string, coeff complex128, sites ...int) Term {
	return Term{Ops: ops, Sites: append([]int(nil), sites...), Coeff: coeff}
}

// Len returns the number of operator characters (separators excluded).
func (t Term) Len() int {
	return utf8.RuneCountInString(t.Ops) - strings.Count(t.Ops, string(Separator))
}

// Clone returns a deep copy of t.
func (t Term) Clone() Term {
	return Term{Ops: t.Ops, Sites: append([]int(nil), t.Sites...), Coeff: t.Coeff}
}

// Key identifies the operator content of t regardless of its coefficient.
// Two canonical terms with equal keys differ only by a scalar factor.
func (t Term) Key() string {
	var sb strings.Builder
	sb.WriteString(t.Ops)
	for _, s := range t.Sites {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, s)
	}

	return sb.String()
}

// String renders t as "(ops, [sites], coeff)". Signed zeros print as +0.
func (t Term) String() string {
	re, im := real(t.Coeff), imag(t.Coeff)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}

	return fmt.Sprintf("(%q, %v, %v)", t.Ops, t.Sites, complex(re, im))
}

// Kinds parses the operator string of t. Separators are rejected; callers
// that accept spinful terms split them first.
func (t Term) Kinds() ([]Kind, error) {
	kinds := make([]Kind, 0, t.Len())
	for _, r := range t.Ops {
		if r == Separator {
			return nil, termErrorf(ErrStraySeparator, t, "split species before parsing")
		}
		k, err := ParseKind(r)
		if err != nil {
			return nil, termErrorf(ErrUnrecognizedOperator, t, "%q", r)
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

// fromKinds renders kinds back into an operator string.
func fromKinds(kinds []Kind) string {
	var sb strings.Builder
	sb.Grow(len(kinds))
	for _, k := range kinds {
		sb.WriteRune(k.Rune())
	}

	return sb.String()
}
