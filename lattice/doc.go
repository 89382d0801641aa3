// SPDX-License-Identifier: MIT

// Package lattice generates the symmetry maps and bond lists of common
// lattices, in the integer form accepted by basis.WithBlock and model files.
//
// The package offers:
//
//   - Chains of L sites: ChainTranslation (i → i+1 mod L), ChainParity
//     (i → L−1−i), ChainBonds (nearest neighbours, open or periodic).
//   - Lx×Ly square grids, site s = x + Lx·y: GridTranslationX/Y,
//     GridReflectionX/Y, GridBonds.
//   - Fermionic maps: ParticleHole (i → −(i+1), population inversion on a
//     spinless or advanced lattice) and SpinInversion (the same values read
//     as a simple spinful map: up ↔ down on every site).
//   - BondTerms / SiteTerms: coupling lists expanded into operator terms.
//
// Guarantees:
//
//   - Deterministic output order (ascending site, then right before up).
//   - No duplicate bonds: periodic wrapping needs at least 3 sites along the
//     wrapped direction; shorter periodic directions fall back to open.
//   - Size errors are ErrTooFewSites; nothing panics at runtime.
package lattice
