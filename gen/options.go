// SPDX-License-Identifier: MIT
// Package gen: functional configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng           = nil   (stochastic constructors fail with ErrNeedRandSource)
//   - randomWeights = false (binary edges, weight 1)
//   - observer      = nil   (no reporting side effect)

package gen

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/nvoulgaris/opinet/matrix"
)

// Stats carries the observational summary of one generated graph.
type Stats struct {
	// Nodes is the order of the generated graph.
	Nodes int
	// MeanDegree is the mean number of distinct neighbors per node,
	// computed on the matrix before any row-stochastic normalization.
	MeanDegree float64
}

// Option mutates the internal generator configuration.
type Option func(*config)

// config aggregates all knobs used by constructors.
// It is passed by value to kernels (immutable to callers).
type config struct {
	// RNG for stochastic choices; nil means "no randomness configured".
	rng *rand.Rand
	// randomWeights selects uniform (0,1) edge weights instead of binary.
	randomWeights bool
	// observer, when non-nil, receives Stats for each generated graph.
	observer func(Stats)
}

// newConfig resolves options into a config with deterministic defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand injects an explicit *rand.Rand shared with the caller.
// Panics if r is nil (programmer error; use WithSeed for a fresh source).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand: rng must be non-nil")
	}
	return func(cfg *config) { cfg.rng = r }
}

// WithSeed configures a fresh deterministic RNG seeded with seed.
// Equal seeds and parameters yield identical graphs.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRandomWeights switches edge weights from binary 1.0 to independent
// uniform draws in (0,1). Gnp additionally finishes with a row-stochastic
// normalization in this mode; SpanningTree does not.
func WithRandomWeights() Option {
	return func(cfg *config) { cfg.randomWeights = true }
}

// WithObserver installs a callback invoked once per generated graph with its
// node count and mean degree. The callback must not retain or mutate the
// matrix; it has no effect on the returned value.
// Panics if fn is nil (omit the option instead).
func WithObserver(fn func(Stats)) Option {
	if fn == nil {
		panic("gen: WithObserver: fn must be non-nil")
	}
	return func(cfg *config) { cfg.observer = fn }
}

// observe reports a's order and mean degree to the configured observer.
// A nil observer makes this a no-op; kernels call it right before returning.
func (cfg config) observe(a *mat.Dense) {
	if cfg.observer == nil {
		return
	}
	deg, err := matrix.MeanDegree(a)
	if err != nil {
		// Kernels only observe matrices they just built square; unreachable.
		return
	}
	n, _ := a.Dims()
	cfg.observer(Stats{Nodes: n, MeanDegree: deg})
}
