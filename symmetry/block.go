// SPDX-License-Identifier: MIT
// Package: fermibasis/symmetry
//
// block.go — named symmetry blocks and their application order.

package symmetry

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cockroachdb/errors"
)

// Block is a named unitary symmetry Q with periodicity m and sector label q:
// states in the block satisfy Q|ψ⟩ = exp(−2πi·q/m)|ψ⟩.
type Block struct {
	Name        string
	Map         Map
	Periodicity int
	Sector      int
}

// NewBlock computes the periodicity of m and reduces q modulo it, so q = −1
// selects the odd sector of a Z2 symmetry.
func NewBlock(name string, m Map, q int) (Block, error) {
	if name == "" {
		return Block{}, errors.Wrap(ErrInvalidBlock, "empty name")
	}
	if m.Len() == 0 {
		return Block{}, errors.Wrapf(ErrInvalidMap, "block %q", name)
	}

	per := m.Period()

	return Block{
		Name:        name,
		Map:         m,
		Periodicity: per,
		Sector:      ((q % per) + per) % per,
	}, nil
}

// Eigenvalue returns exp(−2πi·q/m).
func (b Block) Eigenvalue() complex128 {
	if b.Periodicity == 0 {
		return 1
	}

	return cmplx.Exp(complex(0, -2*math.Pi*float64(b.Sector)/float64(b.Periodicity)))
}

// Order arranges blocks for application. With an explicit order every block
// name must appear exactly once; otherwise blocks are sorted by descending
// periodicity, ties by name. The input slice is not modified.
func Order(blocks []Block, order []string) ([]Block, error) {
	byName := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if _, dup := byName[b.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidBlock, "duplicate block %q", b.Name)
		}
		byName[b.Name] = i
	}

	if order == nil {
		out := append([]Block(nil), blocks...)
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Periodicity != out[j].Periodicity {
				return out[i].Periodicity > out[j].Periodicity
			}
			return out[i].Name < out[j].Name
		})
		return out, nil
	}

	if len(order) != len(blocks) {
		return nil, errors.Wrapf(ErrInvalidBlock, "order names %d blocks, have %d", len(order), len(blocks))
	}
	out := make([]Block, 0, len(blocks))
	used := make(map[string]bool, len(order))
	for _, name := range order {
		i, ok := byName[name]
		if !ok || used[name] {
			return nil, errors.Wrapf(ErrInvalidBlock, "order entry %q", name)
		}
		used[name] = true
		out = append(out, blocks[i])
	}

	return out, nil
}

// Periodicities lists the periodicity of each block, in order.
func Periodicities(blocks []Block) []int {
	pers := make([]int, len(blocks))
	for i, b := range blocks {
		pers[i] = b.Periodicity
	}

	return pers
}
