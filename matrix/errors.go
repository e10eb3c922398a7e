// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified across the module).
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels at definition; attach
// context at call sites with fmt.Errorf("ctx: %w", ErrX) — callers still
// match with errors.Is.

var (
	// ErrNilMatrix indicates a nil *mat.Dense was passed where a matrix is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Adjacency and influence matrices are square by contract.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between a matrix
	// and a companion vector (e.g., an N×N matrix with a length-K vector).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrZeroRowSum is returned by RowStochastic when a row sums to zero:
	// dividing by the row sum would be undefined. Connected-graph generators
	// guarantee at least one nonzero entry per row; other callers must.
	ErrZeroRowSum = errors.New("matrix: row sums to zero")
)
