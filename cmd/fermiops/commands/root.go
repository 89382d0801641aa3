// SPDX-License-Identifier: MIT

// Package commands implements the fermiops subcommands.
package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/fermibasis/internal/logging"
)

// EnvPrefix prefixes environment overrides: FERMIOPS_LOG_LEVEL,
// FERMIOPS_LOG_JSON, FERMIOPS_STRICT.
const EnvPrefix = "FERMIOPS"

const (
	keyLogLevel = "log-level"
	keyLogJSON  = "log-json"
	keyStrict   = "strict"
)

// ErrAsymmetric is returned by check in strict mode when an operator list
// is not invariant under a declared block.
var ErrAsymmetric = errors.New("fermiops: operator lists are not symmetric")

// app carries settings and the logger shared by subcommands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// NewRootCmd builds the command tree with a fresh settings instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fermiops",
		Short: "Fermionic basis sizing and operator-term tooling",
		Long: `fermiops sizes symmetry-reduced fermionic Hilbert spaces and normalizes
operator terms.

Available commands:
  estimate - exact dimension and storage estimate of a basis
  term     - canonical form, Hermitian conjugate and Pauli filter of a term
  check    - symmetry consistency of the operator lists of a model file

Examples:
  fermiops estimate --sites 8 --particles 4 --block T=1,2,3,4,5,6,7,0
  fermiops term --sites 4 --species spinful "+-|n" 0 1 1
  fermiops check --strict hubbard.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(a.v.GetBool(keyLogJSON), a.v.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyLogLevel, logging.DefaultLevel, "log level: debug, info, warn, error")
	pf.Bool(keyLogJSON, false, "log as JSON")
	pf.Bool(keyStrict, false, "fail when a symmetry check reports findings")
	for _, key := range []string{keyLogLevel, keyLogJSON, keyStrict} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(newEstimateCmd(a), newTermCmd(a), newCheckCmd(a))

	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, logging.DefaultLevel)

	return v
}
