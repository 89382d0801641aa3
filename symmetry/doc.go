// SPDX-License-Identifier: MIT

// Package symmetry describes user-defined lattice symmetries as site maps
// and organizes them into labelled symmetry blocks.
//
// A Map Q acts on sites s = 0..L-1 and is written as the list of images:
//
//	Q[i] = j        site i is relabelled to site j
//	Q[i] = -(j+1)   site i is relabelled to j and its fermion population
//	                inverted (c†_i → (−1)^i c_j), e.g. particle-hole symmetry
//
// Maps are validated once by NewMap and are immutable afterwards. Q has a
// periodicity m (Q^m = 1, counting inversions) and eigenvalues
// exp(−2πi·q/m); a Block pairs Q with its name and the chosen sector q.
//
// Apply transforms an operator term by a map. The result still has to be
// canonicalized (opstr.Canonicalize), which accounts for the fermionic sign
// of the induced reordering.
package symmetry
