// SPDX-License-Identifier: MIT
// Package: fermibasis/sector
//
// errors.go — sentinel errors for sector resolution and sizing.
//
// Every sentinel wraps ErrConfiguration: they all describe an
// unsatisfiable or ambiguous request and are never recovered locally.

package sector

import "github.com/cockroachdb/errors"

// ErrConfiguration is the umbrella class for invalid sizing requests.
var ErrConfiguration = errors.New("sector: invalid configuration")

// ErrConflictingSector indicates both absolute counts and densities were given.
var ErrConflictingSector = errors.Wrap(ErrConfiguration, "sector: counts and densities are mutually exclusive")

// ErrSectorOutOfRange indicates a particle count outside [0, N].
var ErrSectorOutOfRange = errors.Wrap(ErrConfiguration, "sector: particle count out of range")

// ErrMalformedSector indicates a sector whose shape does not fit the species
// (e.g. a down-spin count on a spinless lattice) or an invalid companion bound.
var ErrMalformedSector = errors.Wrap(ErrConfiguration, "sector: malformed sector")

// ErrInvalidOverride indicates a non-positive explicit dimension estimate.
var ErrInvalidOverride = errors.Wrap(ErrConfiguration, "sector: estimate override must be > 0")

// ErrDimensionOverflow indicates the exact dimension does not fit in uint64.
var ErrDimensionOverflow = errors.Wrap(ErrConfiguration, "sector: dimension overflows uint64")

// ErrBadSize indicates a non-positive site count.
var ErrBadSize = errors.Wrap(ErrConfiguration, "sector: site count must be > 0")
