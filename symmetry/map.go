// SPDX-License-Identifier: MIT
// Package: fermibasis/symmetry
//
// map.go — validated site maps (tagged variant).

package symmetry

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// MapKind tags the two flavours of site map.
type MapKind uint8

const (
	// Permutation only relabels sites.
	Permutation MapKind = iota
	// PermutationWithInversion also inverts the population of some sites.
	PermutationWithInversion
)

// String implements fmt.Stringer.
func (k MapKind) String() string {
	if k == PermutationWithInversion {
		return "permutation+inversion"
	}

	return "permutation"
}

// Map is an immutable, validated site map. The zero value is an empty map
// and is rejected by every consumer.
type Map struct {
	kind   MapKind
	values []int
}

// NewMap validates values and returns the corresponding Map.
//
// Contract:
//   - len(values) ≥ 1;
//   - every entry v satisfies −L ≤ v < L (L = len(values));
//   - the resolved targets (v ≥ 0 ? v : −(v+1)) form a permutation.
//
// Complexity: O(L).
func NewMap(values []int) (Map, error) {
	l := len(values)
	if l == 0 {
		return Map{}, errors.Wrap(ErrInvalidMap, "empty map")
	}

	seen := make([]bool, l)
	kind := Permutation
	for i, v := range values {
		if v < -l || v >= l {
			return Map{}, errors.Wrapf(ErrInvalidMap, "entry %d = %d outside [%d, %d)", i, v, -l, l)
		}
		target := v
		if v < 0 {
			kind = PermutationWithInversion
			target = -(v + 1)
		}
		if seen[target] {
			return Map{}, errors.Wrapf(ErrInvalidMap, "site %d is the image of two sites", target)
		}
		seen[target] = true
	}

	return Map{kind: kind, values: append([]int(nil), values...)}, nil
}

// MustMap is NewMap for literals in tests and examples. Panics on error.
func MustMap(values ...int) Map {
	m, err := NewMap(values)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns the identity map on l sites.
func Identity(l int) Map {
	values := make([]int, l)
	for i := range values {
		values[i] = i
	}

	return Map{kind: Permutation, values: values}
}

// Len returns the number of sites the map acts on.
func (m Map) Len() int { return len(m.values) }

// Kind returns the map flavour.
func (m Map) Kind() MapKind { return m.kind }

// Values returns a copy of the raw entries (negative = inverted).
func (m Map) Values() []int { return append([]int(nil), m.values...) }

// Target returns the image of site i and whether its population is inverted.
func (m Map) Target(i int) (site int, inverted bool) {
	v := m.values[i]
	if v < 0 {
		return -(v + 1), true
	}

	return v, false
}

// String renders the raw entries.
func (m Map) String() string { return fmt.Sprint(m.values) }

// Equal reports whether m and o have identical entries.
func (m Map) Equal(o Map) bool {
	if len(m.values) != len(o.values) {
		return false
	}
	for i := range m.values {
		if m.values[i] != o.values[i] {
			return false
		}
	}

	return true
}

// Then returns the map "apply m, then o". Inversions compose by parity.
// Both maps must act on the same number of sites.
func (m Map) Then(o Map) (Map, error) {
	if m.Len() != o.Len() {
		return Map{}, errors.Wrapf(ErrInvalidMap, "compose maps of length %d and %d", m.Len(), o.Len())
	}

	values := make([]int, m.Len())
	kind := Permutation
	for i := range values {
		j, inv1 := m.Target(i)
		k, inv2 := o.Target(j)
		if inv1 != inv2 {
			values[i] = -(k + 1)
			kind = PermutationWithInversion
		} else {
			values[i] = k
		}
	}

	return Map{kind: kind, values: values}, nil
}

// IsIdentity reports whether m fixes every site without inversion.
func (m Map) IsIdentity() bool {
	for i, v := range m.values {
		if v != i {
			return false
		}
	}

	return true
}

// Period returns the smallest m ≥ 1 with Q^m = identity, inversions included.
//
// Each site orbit of length c contributes c, or 2c when an odd number of
// inversions is collected around it; the period is their lcm.
//
// Complexity: O(L).
func (m Map) Period() int {
	period := 1
	done := make([]bool, m.Len())
	for start := range m.values {
		if done[start] {
			continue
		}
		length, flips := 0, false
		for site := start; ; {
			done[site] = true
			next, inv := m.Target(site)
			length++
			flips = flips != inv
			site = next
			if site == start {
				break
			}
		}
		if flips {
			length *= 2
		}
		period = lcm(period, length)
	}

	return period
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
