// SPDX-License-Identifier: MIT

// Command fermiops sizes symmetry-reduced fermionic bases, normalizes
// operator terms and checks model files for symmetry consistency.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fermibasis/cmd/fermiops/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
