// SPDX-License-Identifier: MIT
// Package: fermibasis/lattice
//
// grid.go — Lx×Ly square lattices.
//
// Canonical model:
//   • Site index s = x + Lx·y, x ∈ [0, Lx), y ∈ [0, Ly) (row-major).
//   • 4-neighbourhood: right (x+1, y) and up (x, y+1) per site.
//
// Contract:
//   • Lx ≥ 1 and Ly ≥ 1 (else ErrTooFewSites).
//   • Periodic wrapping applies per direction with at least 3 sites.
//   • Stable bond order: for each site in index order, right then up.
//
// Complexity: O(Lx·Ly) time and space.

package lattice

const (
	methodGridMap   = "Grid"
	methodGridBonds = "GridBonds"
	minGridDim      = 1
)

// grid indexes an Lx×Ly lattice.
type grid struct {
	lx, ly int
}

func newGrid(method string, lx, ly int) (grid, error) {
	if lx < minGridDim || ly < minGridDim {
		return grid{}, latticeErrorf(ErrTooFewSites, method, "Lx=%d, Ly=%d (each must be ≥ %d)", lx, ly, minGridDim)
	}

	return grid{lx: lx, ly: ly}, nil
}

func (g grid) site(x, y int) int { return x + g.lx*y }

// mapSites applies f to every (x, y) and returns the resulting site map.
func (g grid) mapSites(f func(x, y int) (int, int)) []int {
	m := make([]int, g.lx*g.ly)
	for y := 0; y < g.ly; y++ {
		for x := 0; x < g.lx; x++ {
			m[g.site(x, y)] = g.site(f(x, y))
		}
	}

	return m
}

// GridTranslationX returns the map (x, y) → (x+1 mod Lx, y).
func GridTranslationX(lx, ly int) ([]int, error) {
	g, err := newGrid(methodGridMap, lx, ly)
	if err != nil {
		return nil, err
	}

	return g.mapSites(func(x, y int) (int, int) { return (x + 1) % lx, y }), nil
}

// GridTranslationY returns the map (x, y) → (x, y+1 mod Ly).
func GridTranslationY(lx, ly int) ([]int, error) {
	g, err := newGrid(methodGridMap, lx, ly)
	if err != nil {
		return nil, err
	}

	return g.mapSites(func(x, y int) (int, int) { return x, (y + 1) % ly }), nil
}

// GridReflectionX returns the map (x, y) → (Lx−1−x, y).
func GridReflectionX(lx, ly int) ([]int, error) {
	g, err := newGrid(methodGridMap, lx, ly)
	if err != nil {
		return nil, err
	}

	return g.mapSites(func(x, y int) (int, int) { return lx - 1 - x, y }), nil
}

// GridReflectionY returns the map (x, y) → (x, Ly−1−y).
func GridReflectionY(lx, ly int) ([]int, error) {
	g, err := newGrid(methodGridMap, lx, ly)
	if err != nil {
		return nil, err
	}

	return g.mapSites(func(x, y int) (int, int) { return x, ly - 1 - y }), nil
}

// GridBonds returns the nearest-neighbour bonds of an Lx×Ly grid.
func GridBonds(lx, ly int, periodic bool) ([]Bond, error) {
	g, err := newGrid(methodGridBonds, lx, ly)
	if err != nil {
		return nil, err
	}
	wrapX := periodic && lx >= minRingSites
	wrapY := periodic && ly >= minRingSites

	bonds := make([]Bond, 0, 2*lx*ly)
	for y := 0; y < ly; y++ {
		for x := 0; x < lx; x++ {
			s := g.site(x, y)
			switch {
			case x+1 < lx:
				bonds = append(bonds, Bond{I: s, J: g.site(x+1, y)})
			case wrapX:
				bonds = append(bonds, Bond{I: s, J: g.site(0, y)})
			}
			switch {
			case y+1 < ly:
				bonds = append(bonds, Bond{I: s, J: g.site(x, y+1)})
			case wrapY:
				bonds = append(bonds, Bond{I: s, J: g.site(x, 0)})
			}
		}
	}

	return bonds, nil
}
