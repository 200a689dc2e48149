// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stationary/chains"
	"github.com/katalvlaran/stationary/gth"
	"github.com/katalvlaran/stationary/internal/chainfile"
	"github.com/katalvlaran/stationary/internal/config"
	"github.com/katalvlaran/stationary/internal/runstore"
	"github.com/katalvlaran/stationary/matrix"
)

var errOutWithMany = errors.New("--out accepts exactly one input file")

// solveFlags are the per-run overrides shared by solve and kmr.
type solveFlags struct {
	out     string
	tol     float64
	workers int
	strict  bool
}

func (f *solveFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.out, "out", "o", "", "write a report to this .yaml/.yml/.json file instead of stdout")
	c.Flags().Float64Var(&f.tol, "tol", config.DefaultTolerance, "verification tolerance")
	c.Flags().IntVar(&f.workers, "workers", 0, "concurrent solves (default from config, else GOMAXPROCS)")
	c.Flags().BoolVar(&f.strict, "strict", false, "reject matrices that are neither stochastic nor generators")
}

// resolve overlays the flags the user actually set onto cfg.
func (f *solveFlags) resolve(c *cobra.Command, cfg config.Config) (config.Config, error) {
	if c.Flags().Changed("tol") {
		cfg.Tolerance = f.tol
	}
	if c.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if c.Flags().Changed("strict") {
		cfg.Strict = f.strict
	}

	return cfg, cfg.Validate()
}

func solveOptions(cfg config.Config) []gth.Option {
	opts := []gth.Option{gth.WithWorkers(cfg.Workers)}
	if cfg.Strict {
		opts = append(opts, gth.WithStrictChain(cfg.Tolerance))
	}

	return opts
}

func solveCmd(a *app) *cobra.Command {
	var f solveFlags

	c := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve the chains stored in YAML/JSON files",
		Long: "Each FILE holds one square matrix, either as a bare list of rows or as\n" +
			"a mapping with name and matrix keys. Stochastic and generator matrices\n" +
			"are both accepted; every result is verified against the tolerance.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.out != "" && len(args) > 1 {
				return errOutWithMany
			}
			cfg, err := f.resolve(cmd, a.cfg)
			if err != nil {
				return err
			}

			docs := make([]*chainfile.Document, len(args))
			ms := make([]matrix.Matrix, len(args))
			for i, path := range args {
				doc, err := chainfile.Load(path)
				if err != nil {
					return err
				}
				a.log.Debug("matrix.loaded", "path", path, "name", doc.Name, "states", doc.Matrix.Rows())
				docs[i], ms[i] = doc, doc.Matrix
			}

			start := time.Now()
			xs, err := gth.SolveBatch(cmd.Context(), ms, solveOptions(cfg)...)
			if err != nil {
				return err
			}
			a.log.Info("solve.done", "matrices", len(ms), "duration", time.Since(start))

			store, err := a.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			for i, doc := range docs {
				r, err := a.report(doc.Name, doc.Matrix, xs[i], cfg.Tolerance)
				if err != nil {
					return err
				}
				if err = a.emit(cmd.OutOrStdout(), f.out, r, len(docs) > 1); err != nil {
					return err
				}
				if err = a.record(cmd.Context(), store, r); err != nil {
					return err
				}
			}

			return nil
		},
	}
	f.register(c)

	return c
}

// report classifies m, measures the residual of x and verifies it.
func (a *app) report(name string, m matrix.Matrix, x []float64, tol float64) (chainfile.Report, error) {
	r := chainfile.Report{Name: name, States: m.Rows(), Distribution: x}
	kind, err := gth.Classify(m, tol)
	if err != nil {
		return r, err
	}
	r.Kind = kind.String()
	if r.Residual, err = gth.ResidualWithin(m, x, tol); err != nil {
		return r, err
	}
	closed, err := chains.ClosedClasses(m)
	if err != nil {
		return r, err
	}
	r.ClosedClasses = len(closed)
	a.log.Info("solve.result", "name", name, "states", r.States, "kind", r.Kind, "residual", r.Residual)
	if r.ClosedClasses > 1 {
		a.log.Warn("solve.reducible", "name", name, "closed_classes", r.ClosedClasses,
			"reason", "stationary distribution is not unique")
	}

	if kind == gth.Unknown {
		a.log.Warn("solve.unverified", "name", name, "reason", "matrix is neither stochastic nor a generator")

		return r, nil
	}
	if err = gth.Verify(m, x, tol); err != nil {
		return r, fmt.Errorf("%s: %w", name, err)
	}

	return r, nil
}

// emit writes r to out when set, otherwise prints one state per line to w.
func (a *app) emit(w io.Writer, out string, r chainfile.Report, header bool) error {
	if out != "" {
		if err := chainfile.WriteReport(out, r); err != nil {
			return err
		}
		a.log.Info("report.written", "path", out, "name", r.Name)

		return nil
	}

	if header {
		if _, err := fmt.Fprintf(w, "# %s\n", r.Name); err != nil {
			return err
		}
	}
	for i, v := range r.Distribution {
		if _, err := fmt.Fprintf(w, "%d\t%.17g\n", i, v); err != nil {
			return err
		}
	}

	return nil
}

// openStore opens the run history when cfg.DB is set; a nil store disables recording.
func (a *app) openStore(ctx context.Context, cfg config.Config) (*runstore.Store, error) {
	if cfg.DB == "" {
		return nil, nil
	}

	return runstore.Open(ctx, cfg.DB)
}

func (a *app) closeStore(s *runstore.Store) {
	if s == nil {
		return
	}
	if err := s.Close(); err != nil {
		a.log.Warn("runstore.close", "err", err)
	}
}

// record appends r to the run history when a store is open.
func (a *app) record(ctx context.Context, s *runstore.Store, r chainfile.Report) error {
	if s == nil {
		return nil
	}
	id, err := s.Save(ctx, r)
	if err != nil {
		return err
	}
	a.log.Debug("run.recorded", "id", id, "name", r.Name)

	return nil
}
