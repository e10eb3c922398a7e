// SPDX-License-Identifier: MIT
// Package matrix: canonical validation checks.
//
// Purpose:
//   - Single source of truth for nil/shape/length guards used module-wide.
//   - Keep kernels minimal by delegating checks here.
//   - Return plain sentinels wrapped with the validator tag so call sites
//     can wrap once more with their own method context.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing beyond the
//     error value itself.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNonNil ensures the matrix reference is non-nil.
// Errors: ErrNilMatrix. Complexity: O(1).
func ValidateNonNil(a *mat.Dense) error {
	if a == nil {
		return validatorErrorf("ValidateNonNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that a is square (rows == cols).
// Assumes a is non-nil (callers run ValidateNonNil first).
// Errors: ErrNonSquare. Complexity: O(1).
func ValidateSquare(a *mat.Dense) error {
	if r, c := a.Dims(); r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateVecLen checks that x has exactly as many entries as a has rows.
// Assumes a is non-nil. Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(a *mat.Dense, x []float64) error {
	if r, _ := a.Dims(); r != len(x) {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	return nil
}
