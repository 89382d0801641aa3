// SPDX-License-Identifier: MIT

// Package basis assembles the description of a symmetry-reduced fermionic
// basis: lattice size, species, particle sectors and symmetry blocks, plus the
// derived dimension and storage estimate.
//
// A Basis is built once by New from functional options and is immutable
// afterwards, so it is safe for concurrent reads.
//
//	t, _ := lattice.ChainTranslation(8)
//	p, _ := lattice.ChainParity(8)
//	b, err := basis.New(8, sector.Spinless,
//	    basis.WithParticles(4),
//	    basis.WithBlock("translation", t, 0),
//	    basis.WithBlock("parity", p, 0),
//	)
//
// Spinful lattices accept symmetry maps in two encodings (see package
// spinful): "simple" length-N maps shared by both species (default), or
// "advanced" length-2N maps (WithAdvancedSymmetries). Blocks are stored in
// the advanced encoding either way.
//
// Term methods follow the same split: in simple spinful mode terms carry one
// '|' between the up and down parts, otherwise they are plain strings over
// Modes() sites. PrepareTerm turns any accepted term into its canonical
// separator-free form, the shape expected by matrix-element engines.
//
// Logging: New logs the sizing at debug level and CheckSymmetry logs one
// warning per inconsistent block, through the logger given by WithLogger
// (silent by default).
package basis
