// SPDX-License-Identifier: MIT
// Package: fermibasis/symmetry
//
// errors.go — sentinel errors for maps and blocks.

package symmetry

import "github.com/cockroachdb/errors"

// ErrInvalidMap indicates a map that is empty, has an entry outside
// [-L, L), or is not a bijection on sites.
var ErrInvalidMap = errors.New("symmetry: invalid site map")

// ErrInvalidBlock indicates a block without a name, a duplicate name, or a
// block order that does not name every block exactly once.
var ErrInvalidBlock = errors.New("symmetry: invalid symmetry block")

// ErrNotRepresentable marks a term whose image under a map is not a single
// operator term (a number operator on a population-inverted site maps to
// 1 − n).
var ErrNotRepresentable = errors.New("symmetry: image is not a single term")
