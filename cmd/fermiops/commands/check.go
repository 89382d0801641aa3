// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/consistency"
	"github.com/katalvlaran/fermibasis/model"
)

func newCheckCmd(a *app) *cobra.Command {
	var eps float64
	cmd := &cobra.Command{
		Use:   "check MODEL",
		Short: "Check the operator lists of a model against its symmetry blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if eps < 0 {
				return errors.Wrapf(ErrBadFlag, "--epsilon %g", eps)
			}
			m, err := model.Load(args[0])
			if err != nil {
				return err
			}
			b, err := m.Basis(basis.WithLogger(a.log), basis.WithEpsilon(eps))
			if err != nil {
				return err
			}
			sr, dr, err := b.CheckSymmetry(m.StaticTerms(), m.DynamicTerms())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printReport(out, "static", sr)
			printReport(out, "dynamic", dr)

			if a.v.GetBool(keyStrict) && !(sr.Consistent() && dr.Consistent()) {
				return errors.Wrapf(ErrAsymmetric, "%s", args[0])
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&eps, "epsilon", consistency.DefaultEpsilon, "relative coefficient tolerance")

	return cmd
}

func printReport(w io.Writer, list string, r consistency.Report) {
	if r.Consistent() {
		fmt.Fprintf(w, "%s: consistent\n", list)
		return
	}
	for _, name := range r.Blocks() {
		d := r[name]
		fmt.Fprintf(w, "%s: block %s: %d odd, %d missing\n", list, name, len(d.Odd), len(d.Missing))
		for _, t := range d.Odd {
			fmt.Fprintf(w, "  odd     %v\n", t)
		}
		for _, t := range d.Missing {
			fmt.Fprintf(w, "  missing %v\n", t)
		}
	}
}
