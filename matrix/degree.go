// SPDX-License-Identifier: MIT
// Package matrix: degree statistics kernel.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodMeanDegree = "MeanDegree"

// MeanDegree returns the arithmetic mean, over all nodes, of each node's
// number of distinct neighbors. Weights are thresholded to binary before
// counting: any entry strictly greater than zero counts as one edge,
// regardless of magnitude, so a row-stochastic matrix reports the same mean
// degree as its unnormalized origin.
//
// For a binary undirected graph with E edges and N nodes the result equals
// 2·E/N, each edge being counted once from either endpoint.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(N²) time, O(1) space.
func MeanDegree(a *mat.Dense) (float64, error) {
	if err := ValidateNonNil(a); err != nil {
		return 0, fmt.Errorf("%s: %w", methodMeanDegree, err)
	}
	if err := ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("%s: %w", methodMeanDegree, err)
	}

	n, _ := a.Dims()

	var (
		i, j    int
		present int
	)
	for i = 0; i < n; i++ {
		row := a.RawRowView(i)
		for j = 0; j < n; j++ {
			if row[j] > 0 {
				present++
			}
		}
	}

	return float64(present) / float64(n), nil
}
