// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/eigen"
	"github.com/katalvlaran/jacobi/matrix"
)

func newSolveCmd(logger func() (*slog.Logger, error)) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run every pivot strategy at every tolerance",
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

			return runSolve(cmd.OutOrStdout(), l, cfg)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

// runSolve prints one table per tolerance, then the Gershgorin intervals.
// A strategy that fails to converge is reported in its row; the run goes on.
func runSolve(out io.Writer, logger *slog.Logger, cfg runConfig) error {
	kinds, err := cfg.kinds()
	if err != nil {
		return err
	}
	src, err := cfg.source()
	if err != nil {
		return err
	}
	a, err := src()
	if err != nil {
		return err
	}
	ref, err := referenceValues(a)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, title(fmt.Sprintf("%s %d×%d (seed %d)", cfg.Matrix, cfg.Size, cfg.Size, cfg.Seed)))
	for _, eps := range cfg.Epsilons {
		rep := newReport("selector", "steps", "eigenvalues", "max |Δ| vs reference", "residual")
		for _, k := range kinds {
			opts := []eigen.Option{eigen.WithLogger(logger), eigen.WithParallelScan(cfg.Workers)}
			if cfg.Eigenvectors {
				opts = append(opts, eigen.WithEigenvectors())
			}
			res, err := eigen.Solve(a, k, eps, cfg.maxIterations(), opts...)
			if err != nil {
				if !errors.Is(err, eigen.ErrNumericDivergence) {
					return err
				}
				rep.addFailed(k.String(), "-", "diverged", "-", "-")
				continue
			}
			residual := "-"
			if res.Vectors != nil {
				residual = formatFloat(eigenResidual(a, res))
			}
			sorted := res.Sorted()
			rep.add(k.String(), strconv.Itoa(res.Steps), formatValues(sorted),
				formatFloat(maxAbsDiff(sorted, ref)), residual)
		}
		rep.add("reference", "-", formatValues(ref), "0", "-")

		fmt.Fprintf(out, "ε = %g\n%s\n", eps, rep.render())
	}

	ivs, err := eigen.GershgorinBounds(a)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, title("Gershgorin intervals"))
	for i, iv := range ivs {
		fmt.Fprintf(out, "  row %d: %s\n", i, iv)
	}

	return nil
}

// eigenResidual returns max_c ‖A·v_c − λ_c·v_c‖₂ over the eigenpairs of res.
func eigenResidual(a *matrix.Dense, res *eigen.Result) float64 {
	n := a.Rows()
	var worst float64
	col := make([]float64, n)
	diff := make([]float64, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = res.Vectors.RawRowView(r)[c]
		}
		av, err := matrix.MatVec(a, col)
		if err != nil {
			return 0
		}
		for r := range diff {
			diff[r] = av[r] - res.Values[c]*col[r]
		}
		if d := matrix.Norm2(diff); d > worst {
			worst = d
		}
	}

	return worst
}
