// SPDX-License-Identifier: MIT
// Package: fermibasis/model
//
// model.go — model schema, decoding and expansion.

package model

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/opstr"
	"github.com/katalvlaran/fermibasis/sector"
)

// Format is a model file encoding.
type Format uint8

const (
	// YAML is selected by .yaml and .yml.
	YAML Format = iota
	// TOML is selected by .toml.
	TOML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == TOML {
		return "toml"
	}

	return "yaml"
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return 0, errors.Wrapf(ErrUnsupportedFormat, "%q", path)
}

// Block is a symmetry block as written in a model file.
type Block struct {
	Name   string `yaml:"name" toml:"name"`
	Map    []int  `yaml:"map" toml:"map"`
	Sector int    `yaml:"sector" toml:"sector"`
}

// OpList is one operator string with its couplings. Drive names the time
// dependence of a dynamic list; it is informational here.
type OpList struct {
	Op        string     `yaml:"op" toml:"op"`
	Drive     string     `yaml:"drive,omitempty" toml:"drive"`
	Couplings []Coupling `yaml:"couplings" toml:"couplings"`
}

// Model is the decoded content of a model file.
type Model struct {
	Sites        int       `yaml:"sites" toml:"sites"`
	Species      string    `yaml:"species" toml:"species"`
	Particles    []int     `yaml:"particles" toml:"particles"`
	Pairs        [][]int   `yaml:"pairs" toml:"pairs"`
	Density      []float64 `yaml:"density" toml:"density"`
	MaxParticles *int      `yaml:"max_particles" toml:"max_particles"`
	Advanced     bool      `yaml:"advanced" toml:"advanced"`
	Estimate     int       `yaml:"estimate" toml:"estimate"`
	SafetyFactor int       `yaml:"safety_factor" toml:"safety_factor"`
	Blocks       []Block   `yaml:"blocks" toml:"blocks"`
	Order        []string  `yaml:"order" toml:"order"`
	Static       []OpList  `yaml:"static" toml:"static"`
	Dynamic      []OpList  `yaml:"dynamic" toml:"dynamic"`
}

// Load reads and decodes the model file at path.
func Load(path string) (*Model, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read model %q", path)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return m, nil
}

// Parse decodes a model. Unknown keys are errors.
func Parse(data []byte, format Format) (*Model, error) {
	var m Model
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, ErrMalformedModel) {
				return nil, err
			}
			return nil, errors.Wrapf(ErrMalformedModel, "yaml: %v", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			if errors.Is(err, ErrMalformedModel) {
				return nil, err
			}
			return nil, errors.Wrapf(ErrMalformedModel, "toml: %v", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, errors.Wrapf(ErrMalformedModel, "toml: unknown keys %v", keys)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %d", format)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// validate checks what decoding cannot: required fields and list shapes.
func (m *Model) validate() error {
	if m.Sites <= 0 {
		return errors.Wrapf(ErrMalformedModel, "sites must be > 0, got %d", m.Sites)
	}
	if _, err := sector.ParseSpecies(m.Species); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedModel, err)
	}
	if m.SafetyFactor < 0 {
		return errors.Wrapf(ErrMalformedModel, "safety_factor must be >= 1, got %d", m.SafetyFactor)
	}
	for i, p := range m.Pairs {
		if len(p) != 2 {
			return errors.Wrapf(ErrMalformedModel, "pairs[%d] = %v, want [up, down]", i, p)
		}
	}
	for _, lists := range [][]OpList{m.Static, m.Dynamic} {
		for _, l := range lists {
			want := (opstr.Term{Ops: l.Op}).Len()
			for k, c := range l.Couplings {
				if len(c.Sites) != want {
					return errors.Wrapf(ErrMalformedCoupling, "%q coupling %d names %d sites, want %d", l.Op, k, len(c.Sites), want)
				}
			}
		}
	}

	return nil
}

// Options translates the model into basis options.
func (m *Model) Options() []basis.Option {
	var opts []basis.Option
	if m.Particles != nil {
		opts = append(opts, basis.WithParticles(m.Particles...))
	}
	if m.Pairs != nil {
		pairs := make([]sector.Count, len(m.Pairs))
		for i, p := range m.Pairs {
			pairs[i] = sector.Count{Up: p[0], Down: p[1]}
		}
		opts = append(opts, basis.WithPairs(pairs...))
	}
	if m.Density != nil {
		opts = append(opts, basis.WithDensity(m.Density...))
	}
	if m.MaxParticles != nil {
		opts = append(opts, basis.WithMaxParticles(*m.MaxParticles))
	}
	if m.Advanced {
		opts = append(opts, basis.WithAdvancedSymmetries())
	}
	if m.Estimate != 0 {
		opts = append(opts, basis.WithEstimate(m.Estimate))
	}
	if m.SafetyFactor > 0 {
		opts = append(opts, basis.WithSafetyFactor(m.SafetyFactor))
	}
	for _, b := range m.Blocks {
		opts = append(opts, basis.WithBlock(b.Name, b.Map, b.Sector))
	}
	if m.Order != nil {
		opts = append(opts, basis.WithBlockOrder(m.Order...))
	}

	return opts
}

// Basis builds the basis of the model; extra options apply last.
func (m *Model) Basis(extra ...basis.Option) (*basis.Basis, error) {
	if m.SafetyFactor < 0 {
		return nil, errors.Wrapf(ErrMalformedModel, "safety_factor must be >= 1, got %d", m.SafetyFactor)
	}
	species, err := sector.ParseSpecies(m.Species)
	if err != nil {
		return nil, err
	}

	return basis.New(m.Sites, species, append(m.Options(), extra...)...)
}

// StaticTerms expands the static lists into terms, in file order.
func (m *Model) StaticTerms() []opstr.Term { return expand(m.Static) }

// DynamicTerms expands the dynamic lists into terms, in file order.
func (m *Model) DynamicTerms() []opstr.Term { return expand(m.Dynamic) }

func expand(lists []OpList) []opstr.Term {
	var terms []opstr.Term
	for _, l := range lists {
		for _, c := range l.Couplings {
			terms = append(terms, opstr.NewTerm(l.Op, c.Coeff, c.Sites...))
		}
	}

	return terms
}
