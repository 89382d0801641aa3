// SPDX-License-Identifier: MIT
// Package: fermibasis/opstr
//
// compare.go — tolerance-aware comparison of terms.

package opstr

import (
	"math"
	"math/cmplx"
)

// CoeffClose reports |a−b| ≤ eps·max(1, |b|).
func CoeffClose(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps*math.Max(1, cmplx.Abs(b))
}

// ApproxEqual reports whether a and b carry the same operators on the same
// sites and coefficients equal within eps (see CoeffClose).
func ApproxEqual(a, b Term, eps float64) bool {
	if a.Ops != b.Ops || len(a.Sites) != len(b.Sites) {
		return false
	}
	for i := range a.Sites {
		if a.Sites[i] != b.Sites[i] {
			return false
		}
	}

	return CoeffClose(a.Coeff, b.Coeff, eps)
}
