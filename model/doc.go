// SPDX-License-Identifier: MIT

// Package model reads fermionic lattice models from YAML or TOML files.
//
// A model file holds the basis parameters, the symmetry blocks and two
// operator lists in coupling-list form: an operator string plus a list of
// [J, i, j, ...] entries, one term per entry.
//
//	sites: 4
//	species: spinful
//	pairs: [[2, 2]]
//	blocks:
//	  - {name: translation, map: [1, 2, 3, 0]}
//	static:
//	  - op: "+-|"
//	    couplings: [[-1, 0, 1], [-1, 1, 2], [-1, 2, 3], [-1, 3, 0]]
//	  - op: "n|n"
//	    couplings: [[4, 0, 0], [4, 1, 1], [4, 2, 2], [4, 3, 3]]
//
// J is a number or a complex literal string ("0.5-1i", "2j"). The format is
// chosen by file extension: .yaml/.yml or .toml. Unknown keys are rejected.
package model
