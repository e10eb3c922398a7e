// SPDX-License-Identifier: MIT
// Package gen: connected G(n,p) constructor.
//
// Canonical model:
//   - Start from a random spanning tree on n nodes (connectivity guarantee
//     independent of p).
//   - For every ordered pair (i,j), i ≠ j, run an independent Bernoulli(p)
//     trial; on success write an edge symmetrically. Pairs already joined by
//     the tree are re-sampled on purpose: p governs density added on top of
//     the guaranteed tree, so realized density is not a closed-form function
//     of p alone. Self-pairs are skipped so the diagonal stays clean for the
//     equilibrium solver's stubbornness overload.
//   - Random-weights mode draws uniform (0,1) weights and finishes with a
//     row-stochastic normalization (safe: connectivity forbids zero rows).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): the underlying tree
//     is stochastic even when p ∈ {0, 1}.
//
// Determinism:
//   - Stable trial order (i asc, then j asc) gives identical graphs for a
//     fixed seed and parameters.
//
// Complexity:
//   - Time O(n²) trials; Space O(n²).

package gen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nvoulgaris/opinet/matrix"
)

const (
	methodGnp = "Gnp"
	probMin   = 0.0
	probMax   = 1.0
)

// Gnp returns the adjacency matrix of a connected Erdős–Rényi-style graph on
// n nodes with additional edge probability p. See the file header for the
// construction and failure contract.
func Gnp(n int, p float64, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side effects on invalid input).
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodGnp, p, probMin, probMax, ErrInvalidProbability)
	}
	if err := validateTreeParams(methodGnp, n, cfg); err != nil {
		return nil, err
	}

	// 2) Connectivity backbone: a random spanning tree.
	a := spanningTree(n, cfg)

	// 3) Bernoulli trials over every ordered pair in stable (i asc, j asc)
	//    order. Tree edges are re-sampled; i == j is skipped.
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.rng.Float64() >= p {
				continue
			}
			w = binaryWeight
			if cfg.randomWeights {
				w = cfg.rng.Float64()
			}
			a.Set(i, j, w)
			a.Set(j, i, w)
		}
	}

	// 4) Report before normalization; mean degree ignores weight magnitude
	//    either way, matching the unnormalized graph.
	cfg.observe(a)

	// 5) Weighted graphs are normalized row-stochastically.
	if cfg.randomWeights {
		norm, err := matrix.RowStochastic(a)
		if err != nil {
			// Connectivity guarantees nonzero rows; surfacing instead of
			// swallowing keeps the contract honest if that ever breaks.
			return nil, fmt.Errorf("%s: %w", methodGnp, err)
		}
		return norm, nil
	}

	return a, nil
}
