// SPDX-License-Identifier: MIT

// Package fermibasis is the operator-term and sector-sizing layer of a
// symmetry-reduced fermionic many-body basis: everything that happens to a
// Hamiltonian term or a particle-number request before states are enumerated.
//
// 🚀 What does fermibasis do?
//
//	• Operator terms: canonical ordering with fermionic signs, Hermitian
//	  conjugates, Pauli-exclusion filtering
//	• Spinful lattices: "simple" (species-shared, '|'-separated) to
//	  "advanced" (2N-mode) translation of terms and symmetry maps
//	• Sectors: exact combinatorial dimensions and symmetry-reduced storage
//	  estimates
//	• Symmetries: site maps with population inversion, periodicities, and a
//	  consistency check of operator lists against declared blocks
//	• Models: YAML/TOML model files and the fermiops CLI
//
// Packages:
//
//	opstr/       — Term, operator vocabulary, Canonicalize, HermitianConjugate, IsPossiblyNonzero
//	sector/      — Sectors, Dimension, Estimate, particle-number resolution
//	symmetry/    — Map, Block, periodicity, Apply (action on a term)
//	spinful/     — two-species terms, TranslateTerm, TranslateMap, SplitMap
//	consistency/ — Check: odd and missing terms per block
//	basis/       — Basis: one immutable description built by New(opts...)
//	lattice/     — chain and grid maps, bonds, coupling expansion
//	model/       — model files (YAML, TOML)
//	cmd/fermiops — estimate, term and check commands
//
// Quick example (half-filled 8-site ring):
//
//	b, _ := basis.New(8, sector.Spinless,
//	    basis.WithParticles(4),
//	    basis.WithBlock("translation", []int{1, 2, 3, 4, 5, 6, 7, 0}, 0),
//	)
//	b.Dimension() // 70
//	b.Estimate()  // 70/8·4 = 32
//
// Orbit enumeration, matrix elements and time evolution live in the engine
// that consumes these terms, not here.
package fermibasis
