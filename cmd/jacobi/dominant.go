// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/eigen"
	"github.com/katalvlaran/jacobi/matrix"
)

func newDominantCmd(logger func() (*slog.Logger, error)) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "dominant",
		Short: "Estimate the dominant eigenvalue by power iteration and the scalar-product method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			l, err := logger()
			if err != nil {
				return err
			}

			return runDominant(cmd.OutOrStdout(), l, cfg)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

type dominantMethod struct {
	name string
	fn   func(matrix.Matrix, []float64, float64, int) (*eigen.Dominant, error)
}

var dominantMethods = []dominantMethod{
	{name: "power iteration", fn: eigen.PowerIteration},
	{name: "scalar product", fn: eigen.ScalarProductMethod},
}

// runDominant prints one table row per (method, tolerance).
func runDominant(out io.Writer, logger *slog.Logger, cfg runConfig) error {
	src, err := cfg.source()
	if err != nil {
		return err
	}
	a, err := src()
	if err != nil {
		return err
	}
	x0, err := builder.RandomVector(cfg.Size, builder.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	ref, err := referenceValues(a)
	if err != nil {
		return err
	}
	want := dominantOf(ref)

	rep := newReport("method", "ε", "λ", "error", "steps", "|Δ| vs reference")
	for _, m := range dominantMethods {
		for _, eps := range cfg.Epsilons {
			d, err := m.fn(a, x0, eps, cfg.maxIterations())
			if err != nil {
				if !errors.Is(err, eigen.ErrNumericDivergence) {
					return err
				}
				logger.Warn("dominant eigenvalue diverged", "method", m.name, "epsilon", eps, "err", err)
				rep.addFailed(m.name, fmt.Sprintf("%g", eps), "diverged", "-", "-", "-")
				continue
			}
			logger.Info("dominant eigenvalue", "method", m.name, "epsilon", eps, "value", d.Value, "steps", d.Steps)
			rep.add(m.name, fmt.Sprintf("%g", eps), strconv.FormatFloat(d.Value, 'f', 6, 64),
				formatFloat(d.Error), strconv.Itoa(d.Steps), formatFloat(math.Abs(d.Value-want)))
		}
	}

	fmt.Fprintln(out, title(fmt.Sprintf("%s %d×%d (seed %d), reference λ = %.6f", cfg.Matrix, cfg.Size, cfg.Size, cfg.Seed, want)))
	fmt.Fprintln(out, rep.render())

	return nil
}
