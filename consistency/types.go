// SPDX-License-Identifier: MIT
// Package: fermibasis/consistency
//
// types.go — report types and options.

package consistency

import (
	"sort"

	"github.com/katalvlaran/fermibasis/opstr"
)

// DefaultEpsilon is the relative coefficient tolerance.
const DefaultEpsilon = 1e-9

// Diagnostics lists the findings of one block.
type Diagnostics struct {
	// Odd holds declared terms whose image has a different coefficient, or
	// no single-term image at all.
	Odd []opstr.Term
	// Missing holds images that are not among the declared terms.
	Missing []opstr.Term
}

// Empty reports whether d has no findings.
func (d Diagnostics) Empty() bool { return len(d.Odd) == 0 && len(d.Missing) == 0 }

// Report maps a block name to its findings. Consistent blocks are absent.
type Report map[string]Diagnostics

// Consistent reports whether no block has findings.
func (r Report) Consistent() bool { return len(r) == 0 }

// Blocks returns the names of inconsistent blocks in lexical order.
func (r Report) Blocks() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Option customizes Check.
type Option func(*config)

type config struct {
	eps float64
}

// WithEpsilon replaces DefaultEpsilon. Panics if eps < 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("consistency: WithEpsilon(eps<0)")
	}
	return func(c *config) {
		c.eps = eps
	}
}
