// SPDX-License-Identifier: MIT

// Package consistency checks that a list of operator terms is invariant under
// declared symmetry blocks.
//
// For every block Q and every declared term T, Q·T is computed (see
// symmetry.Apply), canonicalized and looked up among the declared terms:
//
//	not found                          → Missing (the image is reported)
//	found, coefficient differs         → Odd     (the declared term is reported)
//	not a single term (n on PH site)   → Odd
//
// Declared terms are canonicalized and summed per operator content first, so
// "+-" on (1,0) and "-+" on (0,1) are the same entry. Terms that vanish by
// Pauli exclusion or whose coefficients cancel are ignored.
//
// Symmetry findings are data, never errors: Check fails only on malformed
// terms or terms with sites outside a block's map.
//
// Coefficients compare with a relative tolerance, |a−b| ≤ eps·max(1,|b|);
// DefaultEpsilon unless WithEpsilon is given.
package consistency
