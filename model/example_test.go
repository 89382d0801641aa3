// SPDX-License-Identifier: MIT
package model_test

import (
	"fmt"

	"github.com/katalvlaran/fermibasis/model"
)

// ExampleParse reads a two-site chain and expands its hopping list.
func ExampleParse() {
	doc := `
sites: 2
species: spinless
particles: [1]
static:
  - op: "+-"
    couplings: [[-1, 0, 1], [-1, 1, 0]]
`
	m, err := model.Parse([]byte(doc), model.YAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := m.Basis()
	fmt.Println(b.Dimension())
	for _, t := range m.StaticTerms() {
		fmt.Println(t)
	}
	// Output:
	// 2
	// ("+-", [0 1], (-1+0i))
	// ("+-", [1 0], (-1+0i))
}
