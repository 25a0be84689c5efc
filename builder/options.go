// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     builders themselves never panic.
//   - Determinism is explicit: seeding happens only via WithSeed or
//     WithRand, never from the clock and never from global rand.

package builder

import "math/rand"

// Option customizes a stochastic builder by mutating its resolved
// config before construction begins.
type Option func(*config)

// config is the resolved option set. The zero value carries no RNG;
// stochastic builders reject it with ErrNeedRandSource.
type config struct {
	rng *rand.Rand
}

// newConfig resolves opts in order into a config.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a fresh deterministic RNG seeded with seed.
// Same seed, same builder arguments ⇒ identical digraph.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil to surface the
// programmer error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}
