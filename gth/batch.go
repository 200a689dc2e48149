// SPDX-License-Identifier: MIT

package gth

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stationary/matrix"
)

// SolveBatch solves every matrix in ms on a bounded pool of goroutines
// (WithWorkers, default GOMAXPROCS) and returns the distributions in input
// order.
//
// Each solve is independent and side-effect free, so no locking is needed;
// every worker writes only its own slot of the result slice. The first error,
// wrapped with the item index, cancels the group: items not yet started are
// skipped and the error is returned with a nil result. Cancelling ctx has the
// same effect and returns ctx.Err().
func SolveBatch(ctx context.Context, ms []matrix.Matrix, opts ...Option) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveBatch, err)
	}
	o := gatherOptions(opts...)
	out := make([][]float64, len(ms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range ms {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := SolveMatrix(ms[i], opts...)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = x

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveBatch, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveBatch, err)
	}

	return out, nil
}
