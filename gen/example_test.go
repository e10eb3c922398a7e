// SPDX-License-Identifier: MIT

package gen_test

import (
	"fmt"

	"github.com/nvoulgaris/opinet/gen"
)

// ExampleSpanningTree builds a random tree and checks its structural
// guarantees: connectivity and exactly n−1 undirected edges.
func ExampleSpanningTree() {
	const n = 8

	a, err := gen.SpanningTree(n, gen.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	edges := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.At(i, j) > 0 {
				edges++
			}
		}
	}
	fmt.Println("edges:", edges)
	// Output:
	// edges: 7
}

// ExampleGnp reports size and mean degree through an observer while building
// a fully dense graph (p = 1).
func ExampleGnp() {
	const n = 6

	_, err := gen.Gnp(n, 1, gen.WithSeed(7),
		gen.WithObserver(func(s gen.Stats) {
			fmt.Printf("G(N,p) network created: N = %d, mean degree = %.1f\n",
				s.Nodes, s.MeanDegree)
		}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// G(N,p) network created: N = 6, mean degree = 5.0
}
