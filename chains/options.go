// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// options.go - functional options for the stochastic constructors.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package chains

import (
	"math"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed    int64 = 1   // seed==0 maps here as well
	defaultDensity       = 1.0 // every off-diagonal entry may be positive
)

// Option customizes a stochastic constructor.
type Option func(*config)

// config aggregates the knobs used by RandomStochastic. Passed by value.
type config struct {
	rng     *rand.Rand
	density float64 // probability that an off-diagonal entry is nonzero
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// seed==0 is mapped to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. *rand.Rand is not goroutine-safe: do not share it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chains: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithDensity sets the probability that an off-diagonal entry is nonzero.
// Panics unless 0 <= d <= 1. With d=0 every state is absorbing.
func WithDensity(d float64) Option {
	if math.IsNaN(d) || d < 0 || d > 1 {
		panic("chains: WithDensity requires 0 <= d <= 1")
	}

	return func(c *config) { c.density = d }
}

// newConfig applies options in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand. seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
