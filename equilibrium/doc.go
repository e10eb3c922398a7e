// SPDX-License-Identifier: MIT

// Package equilibrium computes the closed-form steady state of the
// Friedkin–Johnsen opinion-dynamics model.
//
// The model couples an N×N influence matrix A with a length-N vector s of
// intrinsic beliefs. A's diagonal is overloaded as stubbornness: entry (i,i)
// is node i's self-weight (resistance to social influence), while
// off-diagonal entries are inter-node influence weights. With B the diagonal
// matrix of A's diagonal, the equilibrium is the fixed point of
//
//	x = B·s + (A − B)·x
//
// evaluated in closed form as x = (I − (A − B))⁻¹·B·s. Solve computes it by
// a dense LU factorization with pivoting rather than an explicit inverse,
// which is the numerically preferable but semantically identical route.
//
// A singular or near-singular system — an influence structure whose dynamics
// do not converge — fails with ErrSingularSystem; no partial result is
// returned.
package equilibrium
