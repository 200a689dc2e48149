// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for ingestion and numeric policy.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults in one place.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks when callers
	// do not supply their own (row sums, sign of off-diagonals).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// panic messages (stable, grep-able).
const panicEpsilonInvalid = "matrix: WithEpsilon requires a finite eps >= 0"

// Option mutates the internal options during resolution.
type Option func(*options)

// options holds the resolved configuration. Fields are unexported; public
// entry points consume ...Option.
type options struct {
	eps            float64 // tolerance for structural checks
	validateNaNInf bool    // reject NaN/±Inf on ingestion and Set
}

// WithEpsilon sets the non-negative tolerance for structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
