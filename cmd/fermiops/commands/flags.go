// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/model"
	"github.com/katalvlaran/fermibasis/sector"
)

// ErrBadFlag indicates a flag value that does not parse.
var ErrBadFlag = errors.New("fermiops: bad flag value")

// basisFlags describes a basis either by flags or by a model file.
type basisFlags struct {
	model        string
	sites        int
	species      string
	particles    []int
	pairs        []string
	density      []float64
	maxParticles int
	blocks       []string
	order        []string
	advanced     bool
	estimate     int
	safetyFactor int
}

func (f *basisFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.model, "model", "m", "", "model file (.yaml, .yml, .toml); replaces the flags below")
	fs.IntVarP(&f.sites, "sites", "N", 0, "number of lattice sites")
	fs.StringVar(&f.species, "species", "spinless", "spinless or spinful")
	fs.IntSliceVar(&f.particles, "particles", nil, "particle numbers (spinless)")
	fs.StringArrayVar(&f.pairs, "pair", nil, "up,down particle numbers (spinful, repeatable)")
	fs.Float64SliceVar(&f.density, "density", nil, "filling per species")
	fs.IntVar(&f.maxParticles, "max-particles", sector.NoConservation, "all sectors with at most k particles (-1: no conservation)")
	fs.StringArrayVar(&f.blocks, "block", nil, "symmetry block name=v0,v1,...[:q] (repeatable)")
	fs.StringSliceVar(&f.order, "order", nil, "block application order")
	fs.BoolVar(&f.advanced, "advanced", false, "spinful maps and terms use 2N modes")
	fs.IntVar(&f.estimate, "estimate", 0, "override the storage estimate")
	fs.IntVar(&f.safetyFactor, "safety-factor", 0, "estimate headroom factor (default 4)")
}

// build returns the basis and, for model files, the model.
func (f *basisFlags) build(cmd *cobra.Command, extra ...basis.Option) (*basis.Basis, *model.Model, error) {
	if f.model != "" {
		m, err := model.Load(f.model)
		if err != nil {
			return nil, nil, err
		}
		b, err := m.Basis(extra...)
		return b, m, err
	}

	species, err := sector.ParseSpecies(f.species)
	if err != nil {
		return nil, nil, err
	}
	opts, err := f.options(cmd)
	if err != nil {
		return nil, nil, err
	}
	b, err := basis.New(f.sites, species, append(opts, extra...)...)

	return b, nil, err
}

func (f *basisFlags) options(cmd *cobra.Command) ([]basis.Option, error) {
	var opts []basis.Option
	if f.particles != nil {
		opts = append(opts, basis.WithParticles(f.particles...))
	}
	if f.pairs != nil {
		pairs := make([]sector.Count, 0, len(f.pairs))
		for _, s := range f.pairs {
			c, err := parsePair(s)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, c)
		}
		opts = append(opts, basis.WithPairs(pairs...))
	}
	if f.density != nil {
		opts = append(opts, basis.WithDensity(f.density...))
	}
	if cmd.Flags().Changed("max-particles") {
		opts = append(opts, basis.WithMaxParticles(f.maxParticles))
	}
	for _, s := range f.blocks {
		name, values, q, err := parseBlock(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, basis.WithBlock(name, values, q))
	}
	if f.order != nil {
		opts = append(opts, basis.WithBlockOrder(f.order...))
	}
	if f.advanced {
		opts = append(opts, basis.WithAdvancedSymmetries())
	}
	if cmd.Flags().Changed("estimate") {
		opts = append(opts, basis.WithEstimate(f.estimate))
	}
	if f.safetyFactor != 0 {
		if f.safetyFactor < 1 {
			return nil, errors.Wrapf(ErrBadFlag, "--safety-factor %d", f.safetyFactor)
		}
		opts = append(opts, basis.WithSafetyFactor(f.safetyFactor))
	}

	return opts, nil
}

// parsePair reads "up,down".
func parsePair(s string) (sector.Count, error) {
	ints, err := parseInts(s)
	if err != nil || len(ints) != 2 {
		return sector.Count{}, errors.Wrapf(ErrBadFlag, "--pair %q, want up,down", s)
	}

	return sector.Count{Up: ints[0], Down: ints[1]}, nil
}

// parseBlock reads "name=v0,v1,...[:q]".
func parseBlock(s string) (name string, values []int, q int, err error) {
	name, rest, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, 0, errors.Wrapf(ErrBadFlag, "--block %q, want name=v0,v1,...[:q]", s)
	}
	if mapPart, qPart, hasQ := strings.Cut(rest, ":"); hasQ {
		if q, err = strconv.Atoi(strings.TrimSpace(qPart)); err != nil {
			return "", nil, 0, errors.Wrapf(ErrBadFlag, "--block %q: sector %q", s, qPart)
		}
		rest = mapPart
	}
	if values, err = parseInts(rest); err != nil {
		return "", nil, 0, errors.Wrapf(ErrBadFlag, "--block %q: %v", s, err)
	}

	return name, values, q, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
