// SPDX-License-Identifier: MIT

// Package sample draws indices from discrete probability distributions.
//
// The sample package provides:
//
//   - Index: a one-shot weighted draw over a probability vector, returning
//     index i with probability equal to the i-th entry's share of total mass.
//   - Sampler: a reusable handle binding one RNG for repeated draws, suitable
//     as a general-purpose discrete-choice primitive.
//
// Contract highlights:
//
//   - Entries with exactly zero weight are structurally unreachable: they are
//     skipped during the cumulative walk and can never be returned. Callers
//     may rely on this to mask indices out of a distribution.
//   - A degenerate vector (all zeros, or total mass below the uniform draw)
//     fails with ErrInvalidDistribution; a wrong index is never returned.
//   - Randomness is explicit: every stochastic call requires WithSeed or
//     WithRand. There is no package-level RNG and no implicit global state,
//     so fixed seeds give reproducible draws in tests.
//
// See the examples in this package for usage patterns.
package sample
