package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/eigen"
)

func TestParseEpsilons(t *testing.T) {
	got, err := parseEpsilons(" 1e-5, 1e-7 ,,1e-9")
	require.NoError(t, err)
	assert.Equal(t, []float64{1e-5, 1e-7, 1e-9}, got)

	_, err = parseEpsilons("1e-5,abc")
	assert.Error(t, err)
}

func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
matrix: random
size: 4
seed: 9
epsilons: [1e-6]
selectors: [cyclic]
max_iterations: 500
eigenvectors: true
`), 0o600))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Matrix)
	assert.Equal(t, 4, cfg.Size)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, []float64{1e-6}, cfg.Epsilons)
	assert.Equal(t, []string{"cyclic"}, cfg.Selectors)
	assert.Equal(t, 500, cfg.maxIterations())
	assert.True(t, cfg.Eigenvectors)
	assert.Equal(t, 1, cfg.Workers, "unset keys keep their defaults")

	_, err = loadRunConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("size: [oops"), 0o600))
	_, err = loadRunConfig(bad)
	assert.Error(t, err)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix: diagonal\nsize: 3\n"), 0o600))

	var f runFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--size", "6", "--selector", "row-norm,largest"}))

	cfg, err := f.resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, "diagonal", cfg.Matrix) // from file
	assert.Equal(t, 6, cfg.Size)            // flag wins
	kinds, err := cfg.kinds()
	require.NoError(t, err)
	assert.Equal(t, []eigen.SelectorKind{eigen.KindRowNormWeighted, eigen.KindLargestOffDiagonal}, kinds)
	assert.Equal(t, eigen.DefaultMaxIterations(6), cfg.maxIterations())
}

func TestRunConfig_Validate(t *testing.T) {
	mutate := []func(*runConfig){
		func(c *runConfig) { c.Size = 1 },
		func(c *runConfig) { c.Epsilons = nil },
		func(c *runConfig) { c.Epsilons = []float64{0} },
		func(c *runConfig) { c.MaxIterations = -1 },
		func(c *runConfig) { c.Workers = 0 },
		func(c *runConfig) { c.Selectors = []string{"greedy"} },
		func(c *runConfig) { c.Selectors = nil },
	}
	assert.NoError(t, defaultRunConfig().validate())
	for i, m := range mutate {
		c := defaultRunConfig()
		m(&c)
		assert.Errorf(t, c.validate(), "mutation %d", i)
	}
}
