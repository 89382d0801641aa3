// SPDX-License-Identifier: MIT

// Package sector sizes fermionic Hilbert spaces under particle-number
// conservation and estimates the symmetry-reduced dimension used to
// preallocate representative-state storage.
//
// Exact dimensions:
//
//	spinless, sector Nf        C(N, Nf)
//	spinless, union {Nf_i}     Σ C(N, Nf_i)
//	spinless, no conservation  2^N
//	spinful,  sector (Nu, Nd)  C(N, Nu)·C(N, Nd)
//	spinful,  union            Σ over pairs
//	spinful,  no conservation  4^N
//
// Reduced estimate (only when symmetry blocks are declared):
//
//	floor(Ns / Π periodicities) · SafetyFactor
//
// The estimate is a sizing hint, not a bound: orbit sizes are not uniform,
// so the default factor of 4 leaves headroom. WithOverride bypasses it.
//
// Errors are configuration errors (ErrConfiguration): conflicting inputs,
// out-of-range counts, non-positive overrides and uint64 overflow.
package sector
