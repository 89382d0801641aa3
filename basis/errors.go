// SPDX-License-Identifier: MIT
// Package: fermibasis/basis
//
// errors.go — error classes surfaced by New.

package basis

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/fermibasis/sector"
)

// ErrConfiguration is sector.ErrConfiguration: every sizing failure of New
// matches it.
var ErrConfiguration = sector.ErrConfiguration

// ErrBlockLength indicates a symmetry map whose length does not match the
// encoding selected for the lattice.
var ErrBlockLength = errors.New("basis: symmetry map has the wrong length")
