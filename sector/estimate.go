// SPDX-License-Identifier: MIT
// Package: fermibasis/sector
//
// estimate.go — symmetry-reduced storage estimate.
//
// Contract:
//   • No periodicities ⇒ the exact dimension is returned untouched.
//   • Otherwise floor(ns / Π m) · factor, factor = DefaultSafetyFactor unless
//     WithSafetyFactor is given.
//   • WithOverride(k) replaces the heuristic; k must be > 0 and is validated
//     even when no periodicities are present.
//   • A heuristic result of 0 (ns smaller than the group order) falls back to
//     ns, which is always a valid upper bound.

package sector

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// DefaultSafetyFactor is the headroom multiplier over the naive group-order
// reduction. Empirical, not a proven bound.
const DefaultSafetyFactor = 4

// EstimateOption customizes Estimate.
type EstimateOption func(*estimateConfig)

type estimateConfig struct {
	factor      uint64
	override    int
	hasOverride bool
}

// WithSafetyFactor replaces DefaultSafetyFactor. Panics if f < 1.
func WithSafetyFactor(f int) EstimateOption {
	if f < 1 {
		panic("sector: WithSafetyFactor(f<1)")
	}
	return func(c *estimateConfig) {
		c.factor = uint64(f)
	}
}

// WithOverride pins the estimate to k, bypassing the heuristic.
// Validation happens in Estimate, since k usually comes from user input.
func WithOverride(k int) EstimateOption {
	return func(c *estimateConfig) {
		c.override, c.hasOverride = k, true
	}
}

// Estimate returns the storage estimate for a basis of exact dimension ns
// reduced by symmetry blocks with the given periodicities.
func Estimate(ns uint64, periodicities []int, opts ...EstimateOption) (uint64, error) {
	cfg := estimateConfig{factor: DefaultSafetyFactor}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hasOverride && cfg.override <= 0 {
		return 0, errors.Wrapf(ErrInvalidOverride, "got %d", cfg.override)
	}
	if len(periodicities) == 0 {
		return ns, nil
	}
	if cfg.hasOverride {
		return uint64(cfg.override), nil
	}

	order, overflow := groupOrder(periodicities)
	if order == 0 {
		return 0, errors.Wrapf(ErrConfiguration, "periodicities %v must be > 0", periodicities)
	}
	if overflow || order > ns {
		return ns, nil
	}

	hi, est := bits.Mul64(ns/order, cfg.factor)
	if hi != 0 {
		return 0, errors.Wrapf(ErrDimensionOverflow, "estimate %d·%d", ns/order, cfg.factor)
	}
	if est == 0 {
		return ns, nil
	}

	return est, nil
}

// groupOrder multiplies the periodicities; order is 0 if any is non-positive.
func groupOrder(periodicities []int) (order uint64, overflow bool) {
	order = 1
	for _, m := range periodicities {
		if m <= 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(order, uint64(m))
		if hi != 0 {
			overflow = true
		}
		order = lo
	}

	return order, overflow
}
