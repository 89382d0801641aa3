// SPDX-License-Identifier: MIT
// Package: fermibasis/model
//
// errors.go — sentinel errors for model files.

package model

import "github.com/cockroachdb/errors"

// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml
// or .toml.
var ErrUnsupportedFormat = errors.New("model: unsupported file format")

// ErrMalformedModel indicates a file that does not decode into a model, or
// a model missing required fields.
var ErrMalformedModel = errors.New("model: malformed model")

// ErrMalformedCoupling indicates a coupling entry that is not [J, i, ...],
// has an unparsable J, or names a different number of sites than its
// operator string has operators.
var ErrMalformedCoupling = errors.Wrap(ErrMalformedModel, "model: malformed coupling")
