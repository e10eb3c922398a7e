// SPDX-License-Identifier: MIT
// Package gen: Barabási–Albert preferential-attachment constructor.
//
// This path has no bespoke sampling of its own: growth and degree-biased
// attachment are delegated to gonum's graph generator, and the resulting
// undirected graph is converted to a dense binary adjacency matrix.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes); 1 ≤ m < n (else ErrInvalidAttachment).
//   - seed feeds an x/exp/rand source consumed by gonum; equal seeds and
//     parameters yield identical graphs. WithSeed/WithRand are not used on
//     this path — gonum owns the randomness here.
//   - Generator failures and out-of-range node ids surface as
//     ErrConstructFailed wrapping the cause.
//
// Complexity:
//   - Generation is gonum's; conversion is O(n + E) over an O(n²) allocation.

package gen

import (
	"fmt"

	exprand "golang.org/x/exp/rand"
	gonumgen "gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBANodes           = 2
	minAttachment        = 1
)

// BarabasiAlbert returns the adjacency matrix of a scale-free graph of order
// n grown by preferential attachment, each new node arriving with m edges
// joined to existing nodes with probability proportional to their degrees.
func BarabasiAlbert(n, m int, seed uint64, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters before touching the generator.
	if n < minBANodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBarabasiAlbert, n, minBANodes, ErrTooFewNodes)
	}
	if m < minAttachment || m >= n {
		return nil, fmt.Errorf("%s: m=%d not in [%d,%d): %w",
			methodBarabasiAlbert, m, minAttachment, n, ErrInvalidAttachment)
	}

	// 2) Delegate growth to gonum over a fresh undirected graph.
	dst := simple.NewUndirectedGraph()
	src := exprand.NewSource(seed)
	if err := gonumgen.PreferentialAttachment(dst, n, m, src); err != nil {
		return nil, fmt.Errorf("%s: preferential attachment: %v: %w", methodBarabasiAlbert, err, ErrConstructFailed)
	}

	// 3) Convert to a dense binary adjacency matrix. A fresh simple graph
	//    assigns ids 0..n-1, but the bounds guard keeps the conversion safe
	//    against any change in gonum's id policy.
	a := mat.NewDense(n, n, nil)
	edges := dst.Edges()
	for edges.Next() {
		e := edges.Edge()
		i, j := int(e.From().ID()), int(e.To().ID())
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, fmt.Errorf("%s: node id out of range [0,%d): (%d,%d): %w",
				methodBarabasiAlbert, n, i, j, ErrConstructFailed)
		}
		a.Set(i, j, binaryWeight)
		a.Set(j, i, binaryWeight)
	}

	cfg.observe(a)
	return a, nil
}
