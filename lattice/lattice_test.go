// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/lattice"
	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/sector"
)

// TestMaps checks every generator on small lattices.
func TestMaps(t *testing.T) {
	tests := []struct {
		name string
		gen  func() ([]int, error)
		want []int
	}{
		{"chain translation", func() ([]int, error) { return lattice.ChainTranslation(4) }, []int{1, 2, 3, 0}},
		{"chain parity", func() ([]int, error) { return lattice.ChainParity(5) }, []int{4, 3, 2, 1, 0}},
		{"single site", func() ([]int, error) { return lattice.ChainTranslation(1) }, []int{0}},
		{"grid translation x", func() ([]int, error) { return lattice.GridTranslationX(3, 2) }, []int{1, 2, 0, 4, 5, 3}},
		{"grid translation y", func() ([]int, error) { return lattice.GridTranslationY(3, 2) }, []int{3, 4, 5, 0, 1, 2}},
		{"grid reflection x", func() ([]int, error) { return lattice.GridReflectionX(3, 2) }, []int{2, 1, 0, 5, 4, 3}},
		{"grid reflection y", func() ([]int, error) { return lattice.GridReflectionY(3, 2) }, []int{3, 4, 5, 0, 1, 2}},
		{"particle hole", func() ([]int, error) { return lattice.ParticleHole(3) }, []int{-1, -2, -3}},
		{"spin inversion", func() ([]int, error) { return lattice.SpinInversion(2) }, []int{-1, -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.gen()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestBonds checks bond order and periodic fallback.
func TestBonds(t *testing.T) {
	b, err := lattice.ChainBonds(4, true)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Bond{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, b)

	b, err = lattice.ChainBonds(2, true)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Bond{{0, 1}}, b, "two-site ring has one bond")

	b, err = lattice.GridBonds(3, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Bond{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}, b)

	b, err = lattice.GridBonds(3, 2, true)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Bond{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 0}, {2, 5}, {3, 4}, {4, 5}, {5, 3}}, b)
}

// TestErrors covers size and arity validation.
func TestErrors(t *testing.T) {
	_, err := lattice.ChainTranslation(0)
	assert.ErrorIs(t, err, lattice.ErrTooFewSites)
	_, err = lattice.ChainBonds(1, false)
	assert.ErrorIs(t, err, lattice.ErrTooFewSites)
	_, err = lattice.GridReflectionY(2, 0)
	assert.ErrorIs(t, err, lattice.ErrTooFewSites)
	_, err = lattice.ParticleHole(0)
	assert.ErrorIs(t, err, lattice.ErrTooFewSites)

	_, err = lattice.BondTerms("+-n", 1, []lattice.Bond{{0, 1}})
	assert.ErrorIs(t, err, lattice.ErrBondArity)
	_, err = lattice.SiteTerms("nn", 1, 2)
	assert.ErrorIs(t, err, lattice.ErrBondArity)
}

// TestTerms expands couplings, including spinful ones.
func TestTerms(t *testing.T) {
	terms, err := lattice.BondTerms("+|-", 2, []lattice.Bond{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []opstr.Term{
		opstr.NewTerm("+|-", 2, 0, 1),
		opstr.NewTerm("+|-", 2, 1, 2),
	}, terms)

	terms, err = lattice.SiteTerms("z", -1, 3)
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, opstr.NewTerm("z", -1, 2), terms[2])
}

// TestGridHamiltonian_IsSymmetric checks a periodic 3×3 Hubbard-like
// model against every grid symmetry.
func TestGridHamiltonian_IsSymmetric(t *testing.T) {
	const lx, ly = 3, 3
	bonds, err := lattice.GridBonds(lx, ly, true)
	require.NoError(t, err)

	var static []opstr.Term
	for _, tc := range []struct {
		ops   string
		coeff complex128
	}{{"+-|", -1}, {"-+|", 1}, {"|+-", -1}, {"|-+", 1}} {
		terms, err := lattice.BondTerms(tc.ops, tc.coeff, bonds)
		require.NoError(t, err)
		static = append(static, terms...)
	}
	for s := 0; s < lx*ly; s++ {
		static = append(static, opstr.NewTerm("n|n", 4, s, s))
	}

	tx, err := lattice.GridTranslationX(lx, ly)
	require.NoError(t, err)
	ty, err := lattice.GridTranslationY(lx, ly)
	require.NoError(t, err)
	px, err := lattice.GridReflectionX(lx, ly)
	require.NoError(t, err)
	spin, err := lattice.SpinInversion(lx * ly)
	require.NoError(t, err)

	b, err := basis.New(lx*ly, sector.Spinful,
		basis.WithPairs(sector.Count{Up: 2, Down: 2}),
		basis.WithBlock("tx", tx, 0),
		basis.WithBlock("ty", ty, 0),
		basis.WithBlock("px", px, 0),
		basis.WithBlock("spin", spin, 0),
	)
	require.NoError(t, err)

	sr, _, err := b.CheckSymmetry(static, nil)
	require.NoError(t, err)
	assert.True(t, sr.Consistent(), "report %v", sr)
}
