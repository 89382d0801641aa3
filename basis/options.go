// SPDX-License-Identifier: MIT
// Package: fermibasis/basis
//
// options.go — functional options for New.
//
// Options only record values; New validates them, since they usually carry
// user input. Constructors panic only on programmer errors (nil logger,
// negative tolerance, safety factor < 1).

package basis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fermibasis/consistency"
	"github.com/katalvlaran/fermibasis/sector"
)

// Option configures New.
type Option func(*options)

type blockDef struct {
	name   string
	values []int
	q      int
}

type options struct {
	particles []int
	pairs     []sector.Count
	densities []float64
	maxTotal  *int
	sectors   *sector.Sectors

	blocks []blockDef
	order  []string

	estimate *int
	factor   int

	advanced bool
	eps      float64
	log      *zap.Logger
}

func defaultOptions() options {
	return options{
		eps: consistency.DefaultEpsilon,
		log: zap.NewNop(),
	}
}

// WithParticles fixes the particle number of a spinless lattice; several
// values select the union of those sectors.
func WithParticles(nf ...int) Option {
	return func(o *options) {
		o.particles = append(o.particles, nf...)
	}
}

// WithPairs fixes (up, down) particle numbers of a spinful lattice.
func WithPairs(pairs ...sector.Count) Option {
	return func(o *options) {
		o.pairs = append(o.pairs, pairs...)
	}
}

// WithDensity fixes the filling: one value for spinless lattices, up and
// down values for spinful ones. Nf = int(nf·N).
func WithDensity(nf ...float64) Option {
	return func(o *options) {
		o.densities = append([]float64(nil), nf...)
	}
}

// WithMaxParticles selects every sector with at most k particles in total;
// k = sector.NoConservation disables particle conservation.
func WithMaxParticles(k int) Option {
	return func(o *options) {
		o.maxTotal = &k
	}
}

// WithSectors passes pre-built sectors and bypasses particle resolution.
func WithSectors(s sector.Sectors) Option {
	return func(o *options) {
		o.sectors = &s
	}
}

// WithBlock declares a symmetry block: a site map (see symmetry.NewMap) and
// the sector q of its eigenvalue exp(−2πi·q/m).
func WithBlock(name string, values []int, q int) Option {
	return func(o *options) {
		o.blocks = append(o.blocks, blockDef{name: name, values: append([]int(nil), values...), q: q})
	}
}

// WithBlockOrder fixes the application order of blocks; every block must be
// named exactly once. The default is descending periodicity, then name.
func WithBlockOrder(names ...string) Option {
	return func(o *options) {
		o.order = append([]string(nil), names...)
	}
}

// WithEstimate overrides the storage estimate. k must be > 0.
func WithEstimate(k int) Option {
	return func(o *options) {
		o.estimate = &k
	}
}

// WithSafetyFactor replaces sector.DefaultSafetyFactor. Panics if f < 1.
func WithSafetyFactor(f int) Option {
	if f < 1 {
		panic("basis: WithSafetyFactor(f<1)")
	}
	return func(o *options) {
		o.factor = f
	}
}

// WithAdvancedSymmetries makes a spinful basis read maps and terms in the
// advanced (2N-mode) encoding. No effect on spinless lattices.
func WithAdvancedSymmetries() Option {
	return func(o *options) {
		o.advanced = true
	}
}

// WithEpsilon sets the coefficient tolerance of CheckSymmetry. Panics if
// eps < 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("basis: WithEpsilon(eps<0)")
	}
	return func(o *options) {
		o.eps = eps
	}
}

// WithLogger routes basis logs to l. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("basis: WithLogger(nil)")
	}
	return func(o *options) {
		o.log = l
	}
}
