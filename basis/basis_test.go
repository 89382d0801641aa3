// SPDX-License-Identifier: MIT
package basis_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/sector"
	"github.com/katalvlaran/fermibasis/spinful"
	"github.com/katalvlaran/fermibasis/symmetry"
)

var (
	translation8 = []int{1, 2, 3, 4, 5, 6, 7, 0}
	parity8      = []int{7, 6, 5, 4, 3, 2, 1, 0}
)

// TestNew_Spinless covers sizing and default block order.
func TestNew_Spinless(t *testing.T) {
	b, err := basis.New(8, sector.Spinless,
		basis.WithParticles(4),
		basis.WithBlock("parity", parity8, 0),
		basis.WithBlock("translation", translation8, 0),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, b.N())
	assert.Equal(t, 8, b.Modes())
	assert.Equal(t, sector.Spinless, b.Species())
	assert.Equal(t, spinful.Simple, b.Mode())
	assert.Equal(t, []sector.Count{{Up: 4}}, b.Sectors().Counts())
	assert.Equal(t, uint64(70), b.Dimension())
	assert.Equal(t, uint64(16), b.Estimate())
	assert.Equal(t, []int{8, 2}, b.Periodicities(), "descending periodicity")

	b, err = basis.New(8, sector.Spinless,
		basis.WithParticles(4),
		basis.WithBlock("translation", translation8, 0),
		basis.WithBlock("parity", parity8, 0),
		basis.WithBlockOrder("parity", "translation"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, b.Periodicities())
	assert.Equal(t, "parity", b.Blocks()[0].Name)
}

// TestNew_Sectors covers every way of describing particle conservation.
func TestNew_Sectors(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		species sector.Species
		opts    []basis.Option
		want    uint64
	}{
		{"no conservation spinless", 3, sector.Spinless, nil, 8},
		{"no conservation spinful", 3, sector.Spinful, nil, 64},
		{"particles union", 4, sector.Spinless, []basis.Option{basis.WithParticles(1, 3)}, 8},
		{"density", 8, sector.Spinless, []basis.Option{basis.WithDensity(0.5)}, 70},
		{"spinful density", 4, sector.Spinful, []basis.Option{basis.WithDensity(0.5, 0.25)}, 24},
		{"pairs", 4, sector.Spinful, []basis.Option{basis.WithPairs(sector.Count{Up: 2, Down: 2})}, 36},
		{"max particles", 4, sector.Spinless, []basis.Option{basis.WithMaxParticles(1)}, 5},
		{"max particles clamped", 2, sector.Spinless, []basis.Option{basis.WithMaxParticles(7)}, 4},
		{"max particles off", 3, sector.Spinless, []basis.Option{basis.WithMaxParticles(sector.NoConservation)}, 8},
		{"explicit sectors", 4, sector.Spinless, []basis.Option{basis.WithSectors(sector.Fixed(2))}, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := basis.New(tc.n, tc.species, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Dimension())
			assert.Equal(t, tc.want, b.Estimate(), "no blocks: estimate is exact")
		})
	}
}

// TestNew_ConfigurationErrors checks the error classes of bad requests.
func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		species sector.Species
		opts    []basis.Option
		want    error
	}{
		{"zero sites", 0, sector.Spinless, nil, sector.ErrBadSize},
		{"counts and density", 4, sector.Spinless, []basis.Option{basis.WithParticles(2), basis.WithDensity(0.5)}, sector.ErrConflictingSector},
		{"particles and pairs", 4, sector.Spinful, []basis.Option{basis.WithParticles(2), basis.WithPairs(sector.Count{Up: 1})}, sector.ErrConflictingSector},
		{"sectors and particles", 4, sector.Spinless, []basis.Option{basis.WithSectors(sector.Fixed(1)), basis.WithParticles(2)}, sector.ErrConflictingSector},
		{"particles on spinful", 4, sector.Spinful, []basis.Option{basis.WithParticles(2)}, sector.ErrMalformedSector},
		{"pairs on spinless", 4, sector.Spinless, []basis.Option{basis.WithPairs(sector.Count{Up: 2})}, sector.ErrMalformedSector},
		{"too many particles", 4, sector.Spinless, []basis.Option{basis.WithParticles(5)}, sector.ErrSectorOutOfRange},
		{"bad sectors", 4, sector.Spinless, []basis.Option{basis.WithSectors(sector.Fixed(-1))}, sector.ErrSectorOutOfRange},
		{"bad max particles", 4, sector.Spinless, []basis.Option{basis.WithMaxParticles(-2)}, sector.ErrMalformedSector},
		{"bad override", 8, sector.Spinless, []basis.Option{basis.WithBlock("T", translation8, 0), basis.WithEstimate(0)}, sector.ErrInvalidOverride},
		{"full space overflow", 40, sector.Spinful, nil, sector.ErrDimensionOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := basis.New(tc.n, tc.species, tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, basis.ErrConfiguration)
		})
	}
}

// TestNew_SectorHints points at the option that fits the species.
func TestNew_SectorHints(t *testing.T) {
	_, err := basis.New(4, sector.Spinless, basis.WithPairs(sector.Count{Up: 2}))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "WithParticles")

	_, err = basis.New(4, sector.Spinful, basis.WithParticles(2))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "WithPairs")
}

// TestNew_Blocks covers map validation and encodings.
func TestNew_Blocks(t *testing.T) {
	b, err := basis.New(4, sector.Spinful,
		basis.WithPairs(sector.Count{Up: 2, Down: 2}),
		basis.WithBlock("spin", []int{-1, -2, -3, -4}, 0),
	)
	require.NoError(t, err)
	blocks := b.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, []int{4, 5, 6, 7, 0, 1, 2, 3}, blocks[0].Map.Values())
	assert.Equal(t, 2, blocks[0].Periodicity)
	assert.Equal(t, uint64(36), b.Dimension())
	assert.Equal(t, uint64(72), b.Estimate())

	b, err = basis.New(2, sector.Spinful,
		basis.WithAdvancedSymmetries(),
		basis.WithBlock("ph", []int{-1, -2, -3, -4}, -1),
	)
	require.NoError(t, err)
	assert.Equal(t, spinful.Advanced, b.Mode())
	assert.Equal(t, 1, b.Blocks()[0].Sector, "q reduced modulo the periodicity")

	_, err = basis.New(2, sector.Spinful, basis.WithBlock("T", []int{1, 0, 3, 2}, 0))
	assert.ErrorIs(t, err, basis.ErrBlockLength, "simple mode takes N entries")

	_, err = basis.New(2, sector.Spinful, basis.WithAdvancedSymmetries(), basis.WithBlock("T", []int{1, 0}, 0))
	assert.ErrorIs(t, err, basis.ErrBlockLength, "advanced mode takes 2N entries")

	_, err = basis.New(2, sector.Spinless, basis.WithBlock("T", []int{0, 0}, 0))
	assert.ErrorIs(t, err, symmetry.ErrInvalidMap)

	_, err = basis.New(2, sector.Spinless, basis.WithBlock("T", []int{1, 0}, 0), basis.WithBlock("T", []int{0, 1}, 0))
	assert.ErrorIs(t, err, symmetry.ErrInvalidBlock)

	_, err = basis.New(2, sector.Spinless, basis.WithBlock("T", []int{1, 0}, 0), basis.WithBlockOrder("P"))
	assert.ErrorIs(t, err, symmetry.ErrInvalidBlock)
}

// TestNew_EstimateOptions covers the override and the safety factor.
func TestNew_EstimateOptions(t *testing.T) {
	b, err := basis.New(8, sector.Spinless, basis.WithParticles(4),
		basis.WithBlock("T", translation8, 0), basis.WithBlock("P", parity8, 0),
		basis.WithSafetyFactor(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), b.Estimate())

	b, err = basis.New(8, sector.Spinless, basis.WithParticles(4),
		basis.WithBlock("T", translation8, 0), basis.WithEstimate(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), b.Estimate())
}

// TestOptions_Panics covers programmer errors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { basis.WithSafetyFactor(0) })
	assert.Panics(t, func() { basis.WithEpsilon(-1) })
	assert.Panics(t, func() { basis.WithLogger(nil) })
}

// TestTerms_Spinful covers term methods in simple mode.
func TestTerms_Spinful(t *testing.T) {
	b, err := basis.New(2, sector.Spinful)
	require.NoError(t, err)

	c, err := b.Canonicalize(opstr.NewTerm("-+|n", 1, 1, 0, 1))
	require.NoError(t, err)
	assert.True(t, opstr.ApproxEqual(opstr.NewTerm("+-|n", -1, 0, 1, 1), c, 1e-12), "got %v", c)

	h, err := b.HermitianConjugate(opstr.NewTerm("+|n", complex(0, 2), 0, 1))
	require.NoError(t, err)
	assert.True(t, opstr.ApproxEqual(opstr.NewTerm("-|n", complex(0, -2), 0, 1), h, 1e-12), "got %v", h)

	ok, err := b.IsPossiblyNonzero(opstr.NewTerm("++|n", 1, 1, 1, 0))
	require.NoError(t, err)
	assert.False(t, ok)

	p, ok, err := b.PrepareTerm(opstr.NewTerm("-+|n", 1, 1, 0, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, opstr.ApproxEqual(opstr.NewTerm("+-n", -1, 0, 1, 3), p, 1e-12), "got %v", p)

	_, ok, err = b.PrepareTerm(opstr.NewTerm("|--", 1, 0, 0))
	require.NoError(t, err)
	assert.False(t, ok, "Pauli-vanishing")

	_, _, err = b.PrepareTerm(opstr.NewTerm("+-", 1, 0, 1))
	assert.ErrorIs(t, err, spinful.ErrSeparator)

	_, _, err = b.PrepareTerm(opstr.NewTerm("+|-", 1, 0, 2))
	assert.ErrorIs(t, err, opstr.ErrSiteOutOfRange)

	_, err = b.Canonicalize(opstr.NewTerm("+|-|n", 1, 0, 1, 1))
	assert.ErrorIs(t, err, spinful.ErrSeparator)
}

// TestTerms_Plain covers spinless and advanced spinful terms.
func TestTerms_Plain(t *testing.T) {
	spinless, err := basis.New(3, sector.Spinless)
	require.NoError(t, err)
	advanced, err := basis.New(3, sector.Spinful, basis.WithAdvancedSymmetries())
	require.NoError(t, err)

	p, ok, err := spinless.PrepareTerm(opstr.NewTerm("+-", 1, 2, 0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, opstr.ApproxEqual(opstr.NewTerm("-+", -1, 0, 2), p, 1e-12))

	_, _, err = spinless.PrepareTerm(opstr.NewTerm("+-", 1, 3, 0))
	assert.ErrorIs(t, err, opstr.ErrSiteOutOfRange)

	_, err = spinless.Canonicalize(opstr.NewTerm("+|-", 1, 0, 1))
	assert.ErrorIs(t, err, opstr.ErrStraySeparator)

	p, ok, err = advanced.PrepareTerm(opstr.NewTerm("+-", 1, 5, 0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, opstr.ApproxEqual(opstr.NewTerm("-+", -1, 0, 5), p, 1e-12))

	got, err := advanced.PrepareTerms([]opstr.Term{
		opstr.NewTerm("n", 1, 4),
		opstr.NewTerm("++", 1, 4, 4),
		opstr.NewTerm("z", 1, 0),
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = advanced.PrepareTerms([]opstr.Term{opstr.NewTerm("n", 1, 0), opstr.NewTerm("n", 1, 6)})
	assert.ErrorIs(t, err, opstr.ErrSiteOutOfRange)
}

// TestCheckSymmetry covers reports and warnings.
func TestCheckSymmetry(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	b, err := basis.New(4, sector.Spinless,
		basis.WithParticles(2),
		basis.WithBlock("translation", []int{1, 2, 3, 0}, 0),
		basis.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	sized := logs.FilterMessage("basis sized").All()
	require.Len(t, sized, 1)
	assert.EqualValues(t, 6, sized[0].ContextMap()["dimension"])

	var static []opstr.Term
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		static = append(static,
			opstr.NewTerm("+-", -1, i, j),
			opstr.NewTerm("+-", -1, j, i),
			opstr.NewTerm("nn", 0.5, i, j),
		)
	}
	dynamic := []opstr.Term{opstr.NewTerm("n", 1, 0)}

	sr, dr, err := b.CheckSymmetry(static, dynamic)
	require.NoError(t, err)
	assert.True(t, sr.Consistent())
	require.Equal(t, []string{"translation"}, dr.Blocks())
	assert.Equal(t, "n", dr["translation"].Missing[0].Ops)
	assert.Equal(t, []int{1}, dr["translation"].Missing[0].Sites)

	warns := logs.FilterMessage("operator list is not symmetric").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zap.WarnLevel, warns[0].Level)
	assert.Equal(t, "dynamic", warns[0].ContextMap()["list"])
	assert.Equal(t, "translation", warns[0].ContextMap()["block"])

	_, _, err = b.CheckSymmetry([]opstr.Term{opstr.NewTerm("x", 1, 0)}, nil)
	assert.ErrorIs(t, err, opstr.ErrMalformedTerm)
}

// TestCheckSymmetry_SpinInversion checks simple-mode terms against a
// translated spin-inversion block.
func TestCheckSymmetry_SpinInversion(t *testing.T) {
	b, err := basis.New(2, sector.Spinful, basis.WithBlock("spin", []int{-1, -2}, 0))
	require.NoError(t, err)

	sr, _, err := b.CheckSymmetry([]opstr.Term{
		opstr.NewTerm("n|", 1, 0),
		opstr.NewTerm("|n", 1, 0),
		opstr.NewTerm("+-|", 1, 0, 1),
		opstr.NewTerm("|+-", 1, 0, 1),
	}, nil)
	require.NoError(t, err)
	assert.True(t, sr.Consistent(), "report %v", sr)

	sr, _, err = b.CheckSymmetry([]opstr.Term{opstr.NewTerm("n|", 1, 0)}, nil)
	require.NoError(t, err)
	require.Len(t, sr["spin"].Missing, 1)
	assert.Equal(t, []int{2}, sr["spin"].Missing[0].Sites, "down site 0 is mode N")
}
