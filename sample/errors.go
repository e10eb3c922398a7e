// SPDX-License-Identifier: MIT
// Package sample: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX); never match strings.
//   - Sentinels are never pre-wrapped at definition site; call sites attach
//     context via fmt.Errorf("...: %w", ErrX).
//   - No panics on user input; panics are confined to WithX option
//     constructors receiving nonsensical values (programmer error).

package sample

import "errors"

// ErrEmptyDistribution indicates a zero-length probability vector.
// Usage: if errors.Is(err, ErrEmptyDistribution) { /* supply K > 0 entries */ }.
var ErrEmptyDistribution = errors.New("sample: empty distribution")

// ErrNegativeWeight indicates a probability vector containing a negative
// entry. Weights must be nonnegative; the package never silently clamps.
var ErrNegativeWeight = errors.New("sample: negative weight")

// ErrInvalidDistribution indicates that the cumulative mass of the vector
// never reached the uniform draw — the vector is all zeros or its total mass
// falls short of 1. The draw is aborted rather than returning a wrong index.
var ErrInvalidDistribution = errors.New("sample: invalid distribution")

// ErrNeedRandSource indicates that a stochastic call was made without an RNG
// configured (neither WithSeed nor WithRand was supplied).
var ErrNeedRandSource = errors.New("sample: rng is required")
