// SPDX-License-Identifier: MIT
// Package: fermibasis/lattice
//
// errors.go — sentinel errors for lattice generators.

package lattice

import "github.com/cockroachdb/errors"

// ErrTooFewSites indicates a lattice dimension below the generator's minimum.
var ErrTooFewSites = errors.New("lattice: too few sites")

// ErrBondArity indicates an operator string that does not act on exactly the
// number of sites the generator places it on.
var ErrBondArity = errors.New("lattice: operator string does not match bond arity")

// latticeErrorf attaches method context to a sentinel.
func latticeErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, "%s: "+format, append([]interface{}{method}, args...)...)
}
