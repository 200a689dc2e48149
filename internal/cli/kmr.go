// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stationary/chains"
	"github.com/katalvlaran/stationary/gth"
)

func kmrCmd(a *app) *cobra.Command {
	var f solveFlags
	var n int
	var p, eps float64

	c := &cobra.Command{
		Use:   "kmr",
		Short: "Build and solve a KMR evolutionary chain with sequential move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd, a.cfg)
			if err != nil {
				return err
			}
			P, err := chains.KMRSequential(n, p, eps)
			if err != nil {
				return err
			}

			start := time.Now()
			x, err := gth.SolveMatrix(P, solveOptions(cfg)...)
			if err != nil {
				return err
			}
			a.log.Info("solve.done", "matrices", 1, "duration", time.Since(start))

			store, err := a.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			r, err := a.report(fmt.Sprintf("kmr-n%d-p%g-eps%g", n, p, eps), P, x, cfg.Tolerance)
			if err != nil {
				return err
			}
			if err = a.emit(cmd.OutOrStdout(), f.out, r, false); err != nil {
				return err
			}

			return a.record(cmd.Context(), store, r)
		},
	}
	f.register(c)
	c.Flags().IntVar(&n, "n", 27, "population size (the chain has n+1 states)")
	c.Flags().Float64Var(&p, "p", 1.0/3, "mixed-strategy threshold in (0,1)")
	c.Flags().Float64Var(&eps, "eps", 1e-2, "mutation rate in [0,1]")

	return c
}
