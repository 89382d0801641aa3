// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// errors.go — sentinel errors for operator terms.
//
// Error policy:
//   • Every term-level validation failure is an ErrMalformedTerm; the finer
//     sentinels below wrap it, so errors.Is(err, ErrMalformedTerm) holds for
//     all of them, with the standard library and cockroachdb alike.
//   • Sentinels are wrapped with context (operator string, sites) at the
//     failure site; callers branch with errors.Is only.

package opstr

import "github.com/cockroachdb/errors"

// ErrMalformedTerm is the umbrella class for an invalid operator term.
var ErrMalformedTerm = errors.New("opstr: malformed term")

// ErrLengthMismatch indicates the number of operator characters (separators
// excluded) differs from the number of site indices.
var ErrLengthMismatch = errors.Wrap(ErrMalformedTerm, "opstr: operator/site count mismatch")

// ErrUnrecognizedOperator indicates a character outside {I,+,-,n,z}.
var ErrUnrecognizedOperator = errors.Wrap(ErrMalformedTerm, "opstr: unrecognized operator")

// ErrSiteOutOfRange indicates a negative site index or one beyond the lattice.
var ErrSiteOutOfRange = errors.Wrap(ErrMalformedTerm, "opstr: site index out of range")

// ErrStraySeparator indicates a '|' in a term that must already be split
// into species sub-terms.
var ErrStraySeparator = errors.Wrap(ErrMalformedTerm, "opstr: unexpected '|' separator")

// termErrorf attaches the offending term to a sentinel.
func termErrorf(sentinel error, t Term, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, "%s %v: "+format, append([]interface{}{t.Ops, t.Sites}, args...)...)
}
