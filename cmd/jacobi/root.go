// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// newRootCmd wires the command tree. Output goes to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "jacobi",
		Short:         "Eigenvalues of symmetric matrices by Jacobi rotations",
		Long:          `jacobi builds a test matrix, runs every pivot strategy at a list of tolerances and prints the spectra next to Gershgorin bounds and reference eigenvalues.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	logger := func() (*slog.Logger, error) {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(logLevel))); err != nil {
			return nil, fmt.Errorf("--log-level %q: %w", logLevel, err)
		}

		return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl})), nil
	}

	root.AddCommand(newSolveCmd(logger), newDominantCmd(logger))

	return root
}
