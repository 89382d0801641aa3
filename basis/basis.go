// SPDX-License-Identifier: MIT
// Package: fermibasis/basis
//
// basis.go — Basis construction and accessors.
//
// New, step by step:
//  1. Resolve particle sectors (sector.Resolve, or WithSectors as given).
//  2. Build one symmetry block per WithBlock, translated to 2N modes on a
//     spinful lattice in simple mode.
//  3. Order blocks (WithBlockOrder or descending periodicity, then name).
//  4. Compute the exact dimension and the storage estimate.

package basis

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/fermibasis/sector"
	"github.com/katalvlaran/fermibasis/spinful"
	"github.com/katalvlaran/fermibasis/symmetry"
)

// Basis describes a symmetry-reduced fermionic basis. Immutable after New.
type Basis struct {
	n       int
	species sector.Species
	mode    spinful.Mode
	sectors sector.Sectors
	blocks  []symmetry.Block

	dim uint64
	est uint64

	eps float64
	log *zap.SugaredLogger
}

// New builds a basis on n sites.
//
// Errors: ErrConfiguration (sector and sizing failures, see package sector),
// ErrBlockLength, symmetry.ErrInvalidMap, symmetry.ErrInvalidBlock.
func New(n int, species sector.Species, opts ...Option) (*Basis, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Basis{
		n:       n,
		species: species,
		mode:    spinful.Simple,
		eps:     o.eps,
		log:     o.log.Sugar(),
	}
	if species == sector.Spinful && o.advanced {
		b.mode = spinful.Advanced
	}

	var err error
	if b.sectors, err = resolveSectors(n, species, o); err != nil {
		return nil, err
	}

	blocks := make([]symmetry.Block, 0, len(o.blocks))
	for _, def := range o.blocks {
		blk, err := b.newBlock(def)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	if b.blocks, err = symmetry.Order(blocks, o.order); err != nil {
		return nil, err
	}

	if b.dim, err = sector.Dimension(n, species, b.sectors); err != nil {
		return nil, err
	}
	var estOpts []sector.EstimateOption
	if o.factor > 0 {
		estOpts = append(estOpts, sector.WithSafetyFactor(o.factor))
	}
	if o.estimate != nil {
		estOpts = append(estOpts, sector.WithOverride(*o.estimate))
	}
	if b.est, err = sector.Estimate(b.dim, b.Periodicities(), estOpts...); err != nil {
		return nil, err
	}

	b.log.Debugw("basis sized",
		"sites", n,
		"species", species.String(),
		"sectors", b.sectors.String(),
		"blocks", len(b.blocks),
		"dimension", b.dim,
		"estimate", b.est)

	return b, nil
}

// resolveSectors applies the precedence of sector.Resolve to the options.
func resolveSectors(n int, species sector.Species, o options) (sector.Sectors, error) {
	if o.particles != nil && o.pairs != nil {
		return sector.Sectors{}, errors.WithHint(sector.ErrConflictingSector, "pass either WithParticles or WithPairs")
	}
	if o.sectors != nil {
		if o.particles != nil || o.pairs != nil || o.densities != nil || o.maxTotal != nil {
			return sector.Sectors{}, errors.WithHint(sector.ErrConflictingSector, "WithSectors excludes every other particle option")
		}
		if n <= 0 {
			return sector.Sectors{}, errors.Wrapf(sector.ErrBadSize, "N=%d", n)
		}
		if err := o.sectors.Validate(n, species); err != nil {
			return sector.Sectors{}, err
		}
		return *o.sectors, nil
	}

	req := sector.Request{Densities: o.densities, MaxTotal: o.maxTotal}
	switch {
	case o.particles != nil:
		if species == sector.Spinful {
			return sector.Sectors{}, errors.WithHint(
				errors.Wrap(sector.ErrMalformedSector, "single particle counts on a spinful lattice"),
				"use WithPairs")
		}
		req.Counts = sector.Fixed(o.particles...).Counts()
	case o.pairs != nil:
		if species == sector.Spinless {
			return sector.Sectors{}, errors.WithHint(
				errors.Wrap(sector.ErrMalformedSector, "up/down pairs on a spinless lattice"),
				"use WithParticles")
		}
		req.Counts = o.pairs
	}

	return sector.Resolve(n, species, req)
}

// newBlock builds a block from user values in the configured encoding.
func (b *Basis) newBlock(def blockDef) (symmetry.Block, error) {
	want := b.n
	if b.mode == spinful.Advanced {
		want = 2 * b.n
	}
	if len(def.values) != want {
		return symmetry.Block{}, errors.Wrapf(ErrBlockLength, "block %q: %d entries, want %d (%s %s)",
			def.name, len(def.values), want, b.species, b.mode)
	}

	m, err := symmetry.NewMap(def.values)
	if err != nil {
		return symmetry.Block{}, errors.Wrapf(err, "block %q", def.name)
	}
	if b.species == sector.Spinful && b.mode == spinful.Simple {
		if m, err = spinful.TranslateMap(b.n, m); err != nil {
			return symmetry.Block{}, errors.Wrapf(err, "block %q", def.name)
		}
	}

	return symmetry.NewBlock(def.name, m, def.q)
}

// N returns the number of lattice sites.
func (b *Basis) N() int { return b.n }

// Modes returns the number of single-particle modes: N, or 2N for spinful.
func (b *Basis) Modes() int { return b.species.Modes(b.n) }

// Species returns the particle species.
func (b *Basis) Species() sector.Species { return b.species }

// Mode returns the term and map encoding. Spinless lattices report Simple.
func (b *Basis) Mode() spinful.Mode { return b.mode }

// Sectors returns the resolved particle sectors.
func (b *Basis) Sectors() sector.Sectors { return b.sectors }

// Dimension returns the exact size of the particle-conserving Hilbert space.
func (b *Basis) Dimension() uint64 { return b.dim }

// Estimate returns the symmetry-reduced storage estimate.
func (b *Basis) Estimate() uint64 { return b.est }

// Blocks returns the ordered symmetry blocks, maps in advanced encoding.
func (b *Basis) Blocks() []symmetry.Block { return append([]symmetry.Block(nil), b.blocks...) }

// Periodicities returns the periodicity of each block, in application order.
func (b *Basis) Periodicities() []int { return symmetry.Periodicities(b.blocks) }
