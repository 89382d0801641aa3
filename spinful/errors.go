// SPDX-License-Identifier: MIT
// Package: fermibasis/spinful
//
// errors.go — sentinel errors for spinful translation.

package spinful

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/opstr"
)

// ErrSeparator indicates a simple-mode term without exactly one '|'.
// It is also an opstr.ErrMalformedTerm.
var ErrSeparator = errors.Wrap(opstr.ErrMalformedTerm, "spinful: simple term needs exactly one '|'")

// ErrMapLength indicates a map whose length is neither N nor 2N.
var ErrMapLength = errors.New("spinful: map length must be N or 2N")

// ErrNotSimple indicates an advanced map that has no simple-mode equivalent
// (population inversion, or a species block that is not a bijection of the
// N shared sites).
var ErrNotSimple = errors.New("spinful: map has no simple form")
