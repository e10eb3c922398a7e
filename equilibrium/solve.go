// SPDX-License-Identifier: MIT
// Package equilibrium: Friedkin–Johnsen closed-form solve.
//
// Implementation:
//   - Extract B = diag(diag(A)) and form M = I − (A − B) in one pass:
//     M[i,i] = 1 (the diagonal of A − B is zero), M[i,j] = −A[i,j] for i ≠ j.
//   - Assemble the right-hand side B·s.
//   - Solve M·x = B·s via gonum's dense LU with pivoting (SolveVec); an
//     explicit inverse is avoided for numerical stability.
//
// Contract:
//   - A non-nil and square; len(s) == N. Shape violations return the shared
//     matrix package sentinels.
//   - Singular or near-singular M returns ErrSingularSystem; no partial
//     result.
//   - Inputs are never mutated; the result is freshly allocated.
//
// Complexity:
//   - Time O(N³) for the factorization, Space O(N²).

package equilibrium

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nvoulgaris/opinet/matrix"
)

const methodSolve = "Solve"

// Solve returns the Friedkin–Johnsen equilibrium belief vector for the
// influence matrix a (diagonal = stubbornness) and intrinsic beliefs s.
func Solve(a *mat.Dense, s []float64) ([]float64, error) {
	// 1) Shape guards before any allocation.
	if err := matrix.ValidateNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	if err := matrix.ValidateVecLen(a, s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}

	n, _ := a.Dims()

	// 2) Build M = I − (A − B) and rhs = B·s in a single sweep.
	m := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		rhs.SetVec(i, a.At(i, i)*s[i])
		for j = 0; j < n; j++ {
			if i == j {
				m.Set(i, j, 1)
				continue
			}
			m.Set(i, j, -a.At(i, j))
		}
	}

	// 3) Dense linear solve; gonum reports singular and ill-conditioned
	//    systems through the returned error (mat.Condition).
	var x mat.VecDense
	if err := x.SolveVec(m, rhs); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodSolve, err, ErrSingularSystem)
	}

	// 4) Copy out of gonum's backing storage into a plain slice.
	out := make([]float64, n)
	for i = 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
