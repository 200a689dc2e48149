// SPDX-License-Identifier: MIT

package gth

import (
	"math"
	"runtime"
)

// Defaults (single source of truth).
const (
	// DefaultValidateNaNInf rejects NaN/±Inf entries before any numeric work.
	DefaultValidateNaNInf = true

	// DefaultTolerance is the tolerance used by Classify and Residual when
	// deciding whether a matrix is stochastic or a generator.
	DefaultTolerance = 1e-9
)

// panic messages (stable, grep-able).
const (
	panicToleranceInvalid = "gth: WithStrictChain requires a finite eps >= 0"
	panicWorkersInvalid   = "gth: WithWorkers requires n >= 1"
)

// Option configures a solve. Options are resolved in order, last-writer-wins.
type Option func(*options)

type options struct {
	validateNaNInf bool    // reject non-finite entries with matrix.ErrNaNInf
	strict         bool    // require a stochastic or generator matrix
	eps            float64 // tolerance for strict classification
	workers        int     // SolveBatch concurrency bound
}

// WithValidateNaNInf rejects NaN/±Inf entries (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the finite-value scan. Diagonal entries are never
// read, so non-finite values there are harmless; one that reaches the
// distribution is reported as matrix.ErrNaNInf at normalization.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// WithStrictChain requires the input to classify as Stochastic or Generator
// within eps, returning ErrNotChain otherwise. The kernel itself never needs
// this; it is a guard for callers ingesting untrusted matrices.
// Panics when eps is NaN, ±Inf or negative.
func WithStrictChain(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) {
		o.strict = true
		o.eps = eps
	}
}

// WithWorkers bounds the number of concurrent solves in SolveBatch.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultTolerance,
		workers:        runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
