// SPDX-License-Identifier: MIT
// Package matrix: row-stochastic normalization kernel.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodRowStochastic = "RowStochastic"

// RowStochastic returns a new matrix in which every row of a is divided by
// that row's sum, so each row of the result sums to 1 (right stochastic).
// The input is not mutated. RowStochastic is idempotent up to floating-point
// rounding: applying it twice yields the same matrix.
//
// Precondition: no row of a may sum to exactly zero; a matrix produced by a
// connected-graph generator satisfies this, since every node has at least
// one incident edge. Violations fail with ErrZeroRowSum — the package never
// clamps or repairs degenerate rows.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrZeroRowSum.
// Complexity: O(N²) time, O(N²) space for the result.
func RowStochastic(a *mat.Dense) (*mat.Dense, error) {
	// 1) Shape guards (fail fast, no allocation on invalid input).
	if err := ValidateNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowStochastic, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowStochastic, err)
	}

	n, _ := a.Dims()
	out := mat.NewDense(n, n, nil)

	// 2) Normalize row by row in stable ascending order.
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		row := a.RawRowView(i)

		sum = 0
		for j = 0; j < n; j++ {
			sum += row[j]
		}
		if sum == 0 {
			return nil, fmt.Errorf("%s: row %d: %w", methodRowStochastic, i, ErrZeroRowSum)
		}

		for j = 0; j < n; j++ {
			out.Set(i, j, row[j]/sum)
		}
	}

	return out, nil
}
