// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/eigen"
)

// runConfig is one CLI run. Precedence: defaults < --config file < flags set
// on the command line.
type runConfig struct {
	Matrix        string    `yaml:"matrix"`
	Size          int       `yaml:"size"`
	Seed          int64     `yaml:"seed"`
	Epsilons      []float64 `yaml:"epsilons"`
	Selectors     []string  `yaml:"selectors"`
	MaxIterations int       `yaml:"max_iterations"` // 0 means eigen.DefaultMaxIterations(size)
	Eigenvectors  bool      `yaml:"eigenvectors"`
	Workers       int       `yaml:"workers"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Matrix:    builder.KindHilbert,
		Size:      5,
		Seed:      1,
		Epsilons:  []float64{1e-5, 1e-7, 1e-9},
		Selectors: []string{"largest", "cyclic", "row-norm"},
		Workers:   1,
	}
}

// runFlags holds raw flag values before they are merged into a runConfig.
type runFlags struct {
	config    string
	matrix    string
	size      int
	seed      int64
	eps       string
	selectors string
	maxIter   int
	vectors   bool
	workers   int
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	d := defaultRunConfig()
	fs.StringVar(&f.config, "config", "", "YAML run file")
	fs.StringVar(&f.matrix, "matrix", d.Matrix, "matrix kind: "+strings.Join(builder.Kinds(), ", "))
	fs.IntVar(&f.size, "size", d.Size, "matrix order n")
	fs.Int64Var(&f.seed, "seed", d.Seed, "RNG seed for stochastic matrices")
	fs.StringVar(&f.eps, "eps", "1e-5,1e-7,1e-9", "comma-separated tolerances")
	fs.StringVar(&f.selectors, "selector", strings.Join(d.Selectors, ","), "comma-separated pivot strategies")
	fs.IntVar(&f.maxIter, "max-iter", 0, "rotation cap (0: 50·n²)")
	fs.BoolVar(&f.vectors, "eigenvectors", false, "accumulate eigenvectors and report the residual")
	fs.IntVar(&f.workers, "workers", d.Workers, "parallel scan width for the largest strategy")
}

// resolve merges defaults, the optional YAML file and the changed flags.
func (f *runFlags) resolve(fs *pflag.FlagSet) (runConfig, error) {
	cfg := defaultRunConfig()
	if f.config != "" {
		loaded, err := loadRunConfig(f.config)
		if err != nil {
			return runConfig{}, err
		}
		cfg = loaded
	}

	var err error
	if fs.Changed("matrix") {
		cfg.Matrix = f.matrix
	}
	if fs.Changed("size") {
		cfg.Size = f.size
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("eps") {
		if cfg.Epsilons, err = parseEpsilons(f.eps); err != nil {
			return runConfig{}, err
		}
	}
	if fs.Changed("selector") {
		cfg.Selectors = splitList(f.selectors)
	}
	if fs.Changed("max-iter") {
		cfg.MaxIterations = f.maxIter
	}
	if fs.Changed("eigenvectors") {
		cfg.Eigenvectors = f.vectors
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}

	return cfg, cfg.validate()
}

// loadRunConfig reads a YAML run file over the defaults.
func loadRunConfig(path string) (runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return runConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c runConfig) validate() error {
	if c.Size < 2 {
		return fmt.Errorf("size must be >= 2, got %d", c.Size)
	}
	if len(c.Epsilons) == 0 {
		return fmt.Errorf("at least one tolerance is required")
	}
	for _, e := range c.Epsilons {
		if !(e > 0) {
			return fmt.Errorf("tolerance must be > 0, got %g", e)
		}
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations must be >= 0, got %d", c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if _, err := c.kinds(); err != nil {
		return err
	}

	return nil
}

// kinds parses the selector names.
func (c runConfig) kinds() ([]eigen.SelectorKind, error) {
	if len(c.Selectors) == 0 {
		return nil, fmt.Errorf("at least one selector is required")
	}
	out := make([]eigen.SelectorKind, 0, len(c.Selectors))
	for _, name := range c.Selectors {
		k, err := eigen.ParseSelectorKind(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// maxIterations resolves the rotation cap.
func (c runConfig) maxIterations() int {
	if c.MaxIterations > 0 {
		return c.MaxIterations
	}

	return eigen.DefaultMaxIterations(c.Size)
}

// source builds the configured matrix generator.
func (c runConfig) source() (builder.MatrixSource, error) {
	ctor, err := builder.ByName(c.Matrix, c.Size)
	if err != nil {
		return nil, err
	}

	return builder.Source(ctor, builder.WithSeed(c.Seed)), nil
}

func parseEpsilons(s string) ([]float64, error) {
	parts := splitList(s)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("--eps %q: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
