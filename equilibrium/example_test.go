// SPDX-License-Identifier: MIT

package equilibrium_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nvoulgaris/opinet/equilibrium"
)

// ExampleSolve computes the equilibrium of a two-node network in which both
// nodes weight their own belief and each other's equally.
func ExampleSolve() {
	a := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.5, 0.5,
	})
	s := []float64{1, 0}

	x, err := equilibrium.Solve(a, s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.4f %.4f]\n", x[0], x[1])
	// Output:
	// x = [0.6667 0.3333]
}
