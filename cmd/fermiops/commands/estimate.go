// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermibasis/basis"
)

func newEstimateCmd(a *app) *cobra.Command {
	var f basisFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the exact dimension and storage estimate of a basis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := f.build(cmd, basis.WithLogger(a.log))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sites         %d (%s)\n", b.N(), b.Species())
			fmt.Fprintf(out, "sectors       %s\n", b.Sectors())
			fmt.Fprintf(out, "dimension     %d\n", b.Dimension())
			fmt.Fprintf(out, "estimate      %d\n", b.Estimate())
			fmt.Fprintf(out, "periodicities %v\n", b.Periodicities())
			return nil
		},
	}
	f.register(cmd)

	return cmd
}
