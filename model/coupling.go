// SPDX-License-Identifier: MIT
// Package: fermibasis/model
//
// coupling.go — [J, i, j, ...] entries in YAML and TOML.

package model

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Coupling is one [J, i, j, ...] entry: a coefficient and the sites of the
// operators, in operator-string order.
type Coupling struct {
	Coeff complex128
	Sites []int
}

// ParseCoeff parses a real or complex literal. Both the Go ("1+2i") and
// Python ("1+2j") imaginary suffixes are accepted.
func ParseCoeff(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "j") {
		s = strings.TrimSuffix(s, "j") + "i"
	}
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedCoupling, "coefficient %q", s)
	}

	return c, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coupling) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return errors.Wrapf(ErrMalformedCoupling, "line %d: want [J, i, ...]", value.Line)
	}

	head := value.Content[0]
	if head.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrMalformedCoupling, "line %d: J must be a scalar", head.Line)
	}
	var coeff complex128
	switch head.Tag {
	case "!!int", "!!float":
		var f float64
		if err := head.Decode(&f); err != nil {
			return errors.Wrapf(ErrMalformedCoupling, "line %d: %v", head.Line, err)
		}
		coeff = complex(f, 0)
	default:
		var err error
		if coeff, err = ParseCoeff(head.Value); err != nil {
			return errors.Wrapf(err, "line %d", head.Line)
		}
	}

	sites := make([]int, len(value.Content)-1)
	for k, n := range value.Content[1:] {
		if err := n.Decode(&sites[k]); err != nil {
			return errors.Wrapf(ErrMalformedCoupling, "line %d: site %q", n.Line, n.Value)
		}
	}
	*c = Coupling{Coeff: coeff, Sites: sites}

	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *Coupling) UnmarshalTOML(data interface{}) error {
	items, ok := data.([]interface{})
	if !ok || len(items) == 0 {
		return errors.Wrapf(ErrMalformedCoupling, "want [J, i, ...], got %v", data)
	}

	var coeff complex128
	switch v := items[0].(type) {
	case int64:
		coeff = complex(float64(v), 0)
	case float64:
		coeff = complex(v, 0)
	case string:
		var err error
		if coeff, err = ParseCoeff(v); err != nil {
			return err
		}
	default:
		return errors.Wrapf(ErrMalformedCoupling, "J %v has type %T", v, v)
	}

	sites := make([]int, len(items)-1)
	for k, item := range items[1:] {
		v, ok := item.(int64)
		if !ok {
			return errors.Wrapf(ErrMalformedCoupling, "site %v has type %T", item, item)
		}
		sites[k] = int(v)
	}
	*c = Coupling{Coeff: coeff, Sites: sites}

	return nil
}
