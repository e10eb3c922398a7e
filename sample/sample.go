// SPDX-License-Identifier: MIT
// Package sample: weighted index draw (cumulative-walk kernel).
//
// Canonical model:
//   - Draw one uniform r in [0,1).
//   - Walk indices with nonzero weight in ascending order, accumulating mass;
//     return the first index whose cumulative sum reaches r.
//   - Zero-weight indices are skipped and can never be returned.
//
// Contract:
//   - weights must be nonnegative (else ErrNegativeWeight) and non-empty
//     (else ErrEmptyDistribution).
//   - If the cumulative mass never reaches r (all-zero vector, or total mass
//     short of 1 on a malformed input), the draw fails with
//     ErrInvalidDistribution; an out-of-range or wrong-probability index is
//     never returned.
//   - An RNG is required (cfg.rng non-nil, else ErrNeedRandSource).
//
// Determinism:
//   - Stable ascending walk order; deterministic outcomes for a fixed seed.
//
// Complexity:
//   - Time O(K) per draw, Space O(1).

package sample

import (
	"fmt"
	"math/rand"
)

// File-local constants (stable method tags; no magic strings).
const (
	methodIndex      = "Index"
	methodNewSampler = "NewSampler"
)

// Index draws one index from the discrete distribution described by weights.
// The probability of returning i equals weights[i] divided by the total mass,
// subject to floating-point rounding. Requires WithSeed or WithRand.
//
// Errors: ErrEmptyDistribution, ErrNegativeWeight, ErrInvalidDistribution,
// ErrNeedRandSource. All are surfaced immediately; no retry, no repair.
func Index(weights []float64, opts ...Option) (int, error) {
	// Resolve functional options into an immutable config.
	cfg := newConfig(opts...)

	// Randomness must be explicit; there is no package-level RNG.
	if cfg.rng == nil {
		return 0, fmt.Errorf("%s: %w", methodIndex, ErrNeedRandSource)
	}

	return index(weights, cfg.rng)
}

// Sampler is a reusable weighted sampler bound to a single RNG.
// It is not safe for concurrent use; share one per goroutine or guard it.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler constructs a Sampler from the supplied options.
// WithSeed or WithRand is mandatory (ErrNeedRandSource otherwise); a Sampler
// without randomness would be unable to honor its contract.
func NewSampler(opts ...Option) (*Sampler, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSampler, ErrNeedRandSource)
	}
	return &Sampler{rng: cfg.rng}, nil
}

// Index draws one index using the Sampler's bound RNG.
// Semantics and errors match the package-level Index.
func (s *Sampler) Index(weights []float64) (int, error) {
	return index(weights, s.rng)
}

// index is the shared kernel behind Index and Sampler.Index.
// Assumes rng non-nil (callers enforce).
func index(weights []float64, rng *rand.Rand) (int, error) {
	// 1) Validate shape and sign before consuming randomness.
	if len(weights) == 0 {
		return 0, fmt.Errorf("%s: %w", methodIndex, ErrEmptyDistribution)
	}
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%s: weights[%d]=%g: %w", methodIndex, i, w, ErrNegativeWeight)
		}
	}

	// 2) One uniform draw in [0,1).
	r := rng.Float64()

	// 3) Cumulative walk in stable ascending index order.
	var sum float64
	for i, w := range weights {
		if w == 0 {
			// Zero-weight indices are structurally unreachable.
			continue
		}
		sum += w
		if r <= sum {
			return i, nil
		}
	}

	// 4) Mass exhausted without reaching r: degenerate or malformed vector.
	return 0, fmt.Errorf("%s: cumulative mass %.6f never reached draw %.6f: %w",
		methodIndex, sum, r, ErrInvalidDistribution)
}
