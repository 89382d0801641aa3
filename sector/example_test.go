// SPDX-License-Identifier: MIT
package sector_test

import (
	"fmt"

	"github.com/katalvlaran/fermibasis/sector"
)

// ExampleDimension sizes a half-filled 8-site chain and its translation/parity
// reduced storage estimate.
func ExampleDimension() {
	ns, _ := sector.Dimension(8, sector.Spinless, sector.Fixed(4))
	est, _ := sector.Estimate(ns, []int{8, 2})
	fmt.Println(ns, est)
	// Output:
	// 70 16
}
