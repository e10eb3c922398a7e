// SPDX-License-Identifier: MIT

package sample_test

import (
	"fmt"

	"github.com/nvoulgaris/opinet/sample"
)

// ExampleIndex demonstrates that zero-weight entries are unreachable: all of
// the mass sits on index 2, so the draw always lands there.
func ExampleIndex() {
	weights := []float64{0, 0, 1}

	idx, err := sample.Index(weights, sample.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("chosen index:", idx)
	// Output:
	// chosen index: 2
}

// ExampleSampler shows a reusable sampler bound to one seeded RNG.
func ExampleSampler() {
	s, err := sample.NewSampler(sample.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Index 0 is masked out; only 1 and 2 can ever be drawn.
	weights := []float64{0, 0.5, 0.5}
	for i := 0; i < 3; i++ {
		idx, err := s.Index(weights)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(idx > 0)
	}
	// Output:
	// true
	// true
	// true
}
