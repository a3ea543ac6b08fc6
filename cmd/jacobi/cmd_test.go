package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, _, err := run(t, "solve", "--matrix", "hilbert", "--size", "4", "--eps", "1e-9", "--eigenvectors")
	require.NoError(t, err)
	assert.Contains(t, out, "hilbert 4×4")
	assert.Contains(t, out, "ε = 1e-09")
	for _, name := range []string{"largest", "cyclic", "row-norm", "reference"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Gershgorin intervals")
	assert.Contains(t, out, "row 3:")
	assert.NotContains(t, out, "diverged")
}

func TestSolveCommand_CapReportedPerRow(t *testing.T) {
	out, _, err := run(t, "solve", "--matrix", "random", "--size", "6", "--eps", "1e-9", "--max-iter", "2", "--selector", "largest")
	require.NoError(t, err)
	assert.Contains(t, out, "diverged")
}

func TestSolveCommand_DebugLogs(t *testing.T) {
	_, logs, err := run(t, "--log-level", "debug", "solve", "--size", "3", "--eps", "1e-6", "--selector", "cyclic")
	require.NoError(t, err)
	assert.Contains(t, logs, "jacobi rotation")
	assert.Contains(t, logs, "level=DEBUG")
}

func TestSolveCommand_BadInput(t *testing.T) {
	_, _, err := run(t, "solve", "--matrix", "pascal")
	assert.Error(t, err)
	_, _, err = run(t, "solve", "--selector", "greedy")
	assert.Error(t, err)
	_, _, err = run(t, "--log-level", "loud", "solve")
	assert.Error(t, err)
}

func TestDominantCommand(t *testing.T) {
	out, _, err := run(t, "dominant", "--matrix", "random", "--size", "4", "--seed", "7", "--eps", "1e-7")
	require.NoError(t, err)
	assert.Contains(t, out, "power iteration")
	assert.Contains(t, out, "scalar product")
	assert.Contains(t, out, "reference λ")
}
