// SPDX-License-Identifier: MIT
// Package equilibrium: sentinel errors.
//
// Shape errors are shared with the matrix package (matrix.ErrNilMatrix,
// matrix.ErrNonSquare, matrix.ErrDimensionMismatch) so callers branch on one
// sentinel set module-wide; only the solver-specific failure lives here.

package equilibrium

import "errors"

// ErrSingularSystem indicates that I − (A − B) is singular or numerically
// near-singular, i.e. the influence structure implies unbounded or
// non-convergent dynamics and the equilibrium is undefined.
// Usage: if errors.Is(err, ErrSingularSystem) { /* reject the network */ }.
var ErrSingularSystem = errors.New("equilibrium: singular influence system")
