// SPDX-License-Identifier: MIT
package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermibasis/cmd/fermiops/commands"
	"github.com/katalvlaran/fermibasis/sector"
)

const hubbard = "../../../model/testdata/hubbard.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestEstimate(t *testing.T) {
	out, err := run(t, "estimate", "--sites", "8", "--particles", "4",
		"--block", "T=1,2,3,4,5,6,7,0", "--block", "P=7,6,5,4,3,2,1,0:1")
	require.NoError(t, err)
	assert.Contains(t, out, "dimension     70\n")
	assert.Contains(t, out, "estimate      16\n")
	assert.Contains(t, out, "periodicities [8 2]\n")

	out, err = run(t, "estimate", "--sites", "4", "--species", "spinful", "--pair", "2,2", "--pair", "1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "dimension     52\n")

	out, err = run(t, "estimate", "--model", hubbard)
	require.NoError(t, err)
	assert.Contains(t, out, "dimension     36\n")
	assert.Contains(t, out, "periodicities [4 2]\n")
}

func TestEstimate_Errors(t *testing.T) {
	_, err := run(t, "estimate", "--sites", "4", "--block", "T1,2,3,0")
	assert.ErrorIs(t, err, commands.ErrBadFlag)

	_, err = run(t, "estimate", "--sites", "4", "--block", "T=1,2,x,0")
	assert.ErrorIs(t, err, commands.ErrBadFlag)

	_, err = run(t, "estimate", "--sites", "4", "--species", "spinful", "--pair", "2")
	assert.ErrorIs(t, err, commands.ErrBadFlag)

	_, err = run(t, "estimate", "--sites", "4", "--particles", "5")
	assert.ErrorIs(t, err, sector.ErrSectorOutOfRange)

	_, err = run(t, "estimate", "--sites", "4", "--max-particles=-3")
	assert.ErrorIs(t, err, sector.ErrMalformedSector)

	_, err = run(t, "--log-level", "loud", "estimate", "--sites", "2")
	assert.Error(t, err)
}

func TestTerm(t *testing.T) {
	out, err := run(t, "term", "--sites", "2", "--species", "spinful", "+-|n", "0", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `canonical  ("+-|n", [0 1 1], (1+0i))`)
	assert.Contains(t, out, `conjugate  ("-+|n", [0 1 1], (-1+0i))`)
	assert.Contains(t, out, "nonzero    true\n")
	assert.Contains(t, out, `prepared   ("+-n", [0 1 3], (1+0i))`)

	out, err = run(t, "term", "--sites", "3", "--coeff", "1+2j", "--", "-+", "2", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `canonical  ("+-", [0 2], (-1-2i))`)

	out, err = run(t, "term", "--sites", "2", "++", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "nonzero    false\n")
	assert.NotContains(t, out, "prepared")

	_, err = run(t, "term", "--sites", "2", "+-", "0", "one")
	assert.ErrorIs(t, err, commands.ErrBadFlag)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", hubbard)
	require.NoError(t, err)
	assert.Contains(t, out, "static: consistent\n")
	assert.Contains(t, out, "dynamic: block spin: 0 odd, 1 missing\n")
	assert.Contains(t, out, "dynamic: block translation: 0 odd, 1 missing\n")

	_, err = run(t, "check", "--strict", hubbard)
	assert.ErrorIs(t, err, commands.ErrAsymmetric)

	t.Setenv("FERMIOPS_STRICT", "true")
	_, err = run(t, "check", hubbard)
	assert.ErrorIs(t, err, commands.ErrAsymmetric)

	_, err = run(t, "check", "--epsilon", "-1", hubbard)
	assert.ErrorIs(t, err, commands.ErrBadFlag)
}
