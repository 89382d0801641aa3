// SPDX-License-Identifier: MIT

// Package spinful handles two-species (spin-½) fermion terms and symmetry
// maps, and translates the user-facing "simple" description into the
// canonical "advanced" one used by the rest of the pipeline.
//
// Two equivalent encodings of an N-site spinful lattice:
//
//	simple    one shared site range 0..N-1; operator strings carry a single
//	          '|' separating the up part from the down part ("+-|n").
//	          A map entry -(j+1) sends the site to j of the OTHER species
//	          (spin inversion).
//	advanced  2N concatenated modes: 0..N-1 up, N..2N-1 down; no separator.
//	          Negative map entries invert populations (particle-hole).
//
// A Term is composition, not inheritance: a pair of spinless sub-terms (Up,
// Down) with one shared coefficient. Every spinless algorithm (canonicalize,
// conjugate, Pauli filter) runs on each sub-term independently; operators of
// different species are treated as commuting.
package spinful
