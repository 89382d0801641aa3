// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fermibasis/basis"
	"github.com/katalvlaran/fermibasis/model"
	"github.com/katalvlaran/fermibasis/opstr"
)

func newTermCmd(a *app) *cobra.Command {
	var (
		f     basisFlags
		coeff string
	)
	cmd := &cobra.Command{
		Use:   "term OPSTR [SITE...]",
		Short: "Normalize one operator term",
		Long: `Print the canonical form, the Hermitian conjugate, the Pauli filter verdict
and the prepared (separator-free, canonical) form of a term.

Put "--" before operator strings that start with '-':
  fermiops term --sites 3 -- "-+" 2 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := f.build(cmd, basis.WithLogger(a.log))
			if err != nil {
				return err
			}
			c, err := model.ParseCoeff(coeff)
			if err != nil {
				return errors.Wrapf(ErrBadFlag, "--coeff %q", coeff)
			}
			sites := make([]int, len(args)-1)
			for i, s := range args[1:] {
				if sites[i], err = strconv.Atoi(s); err != nil {
					return errors.Wrapf(ErrBadFlag, "site %q", s)
				}
			}
			t := opstr.NewTerm(args[0], c, sites...)

			canon, err := b.Canonicalize(t)
			if err != nil {
				return err
			}
			hc, err := b.HermitianConjugate(t)
			if err != nil {
				return err
			}
			prepared, ok, err := b.PrepareTerm(t)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "canonical  %v\n", canon)
			fmt.Fprintf(out, "conjugate  %v\n", hc)
			fmt.Fprintf(out, "nonzero    %t\n", ok)
			if ok {
				fmt.Fprintf(out, "prepared   %v\n", prepared)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&coeff, "coeff", "J", "1", "coefficient, real or complex (\"1+2i\")")

	return cmd
}
