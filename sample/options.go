// SPDX-License-Identifier: MIT
// Package sample: functional configuration.
//
// Design:
//   - config is the single source of truth for sampler knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - rng = nil (no randomness unless explicitly seeded; stochastic calls
//     without an RNG fail with ErrNeedRandSource).

package sample

import "math/rand"

// Option mutates the internal sampler configuration.
type Option func(*config)

// config aggregates all knobs used by draws. Passed by value (immutable to callers).
type config struct {
	// RNG for uniform draws; nil means "no randomness configured".
	rng *rand.Rand
}

// newConfig resolves options into a config with deterministic defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand injects an explicit *rand.Rand for uniform draws.
// Panics if r is nil (programmer error; use WithSeed for a fresh source).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand: rng must be non-nil")
	}
	return func(cfg *config) { cfg.rng = r }
}

// WithSeed configures a fresh deterministic RNG seeded with seed.
// Equal seeds yield identical draw sequences.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}
