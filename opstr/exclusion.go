// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// exclusion.go — Pauli-exclusion pre-filter.

package opstr

// IsPossiblyNonzero reports whether t can have a non-zero matrix element.
//
// A term vanishes identically when two creation operators, or two
// annihilation operators, act on the same site: (c†)² = c² = 0. Other
// orderings (c†c†c on distinct sites, c†c on one site) are left to the
// matrix-element engine.
//
// Each '|'-separated segment is an independent species and is checked on
// its own; the term survives only if every segment does. A term with no
// operators is never zero. Operators without a matching site (malformed
// input) are ignored; use Validate to reject such terms.
func IsPossiblyNonzero(t Term) bool {
	created := make(map[int]struct{})
	annihilated := make(map[int]struct{})

	pos := 0
	for _, r := range t.Ops {
		if r == Separator {
			clear(created)
			clear(annihilated)
			continue
		}
		if pos >= len(t.Sites) {
			break
		}
		site := t.Sites[pos]
		pos++

		var seen map[int]struct{}
		switch r {
		case '+':
			seen = created
		case '-':
			seen = annihilated
		default:
			continue
		}
		if _, dup := seen[site]; dup {
			return false
		}
		seen[site] = struct{}{}
	}

	return true
}
