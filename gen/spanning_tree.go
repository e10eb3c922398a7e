// SPDX-License-Identifier: MIT
// Package gen: random spanning tree constructor.
//
// Canonical model:
//   - Draw a uniformly random permutation of the n node labels.
//   - Connect consecutive permuted nodes: edge between permutation[k-1] and
//     permutation[k] for k = 1..n-1, written symmetrically.
//   - Weight 1.0 per edge, or an independent uniform (0,1) draw in
//     random-weights mode.
//
// The result is connected and acyclic with exactly n−1 undirected edges by
// construction; different permutations give different but always-valid trees.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes). n == 1 yields the 1×1 zero matrix.
//   - cfg.rng must be non-nil (else ErrNeedRandSource); the permutation is
//     stochastic for every n.
//
// Complexity:
//   - Time O(n) edges over an O(n²) allocation; Space O(n²) for the matrix.

package gen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	methodSpanningTree = "SpanningTree"
	minTreeNodes       = 1
	binaryWeight       = 1.0
)

// SpanningTree returns the adjacency matrix of a random tree spanning n
// nodes. See the file header for the construction and failure contract.
func SpanningTree(n int, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	if err := validateTreeParams(methodSpanningTree, n, cfg); err != nil {
		return nil, err
	}

	a := spanningTree(n, cfg)
	cfg.observe(a)
	return a, nil
}

// validateTreeParams runs the shared guards for tree-backed constructors.
// method tags the wrapped errors with the public entry point's name.
func validateTreeParams(method string, n int, cfg config) error {
	if n < minTreeNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minTreeNodes, ErrTooFewNodes)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}

// spanningTree is the kernel shared by SpanningTree and Gnp.
// Assumes n ≥ 1 and cfg.rng non-nil (callers validate).
func spanningTree(n int, cfg config) *mat.Dense {
	a := mat.NewDense(n, n, nil)

	// Uniform random node order; consecutive nodes become tree edges.
	order := cfg.rng.Perm(n)

	var (
		k    int
		i, j int
		w    float64
	)
	for k = 1; k < n; k++ {
		w = binaryWeight
		if cfg.randomWeights {
			w = cfg.rng.Float64()
		}
		i, j = order[k-1], order[k]
		// Symmetric assignment keeps the graph undirected.
		a.Set(i, j, w)
		a.Set(j, i, w)
	}

	return a
}
