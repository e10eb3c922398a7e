// SPDX-License-Identifier: MIT
// Package gen: sentinel errors for the topology constructors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("Method: ...: %w", ErrX).
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to WithX option constructors receiving nonsensical values.

package gen

import "errors"

// ErrTooFewNodes indicates that the requested node count is below the
// constructor's minimum (n ≥ 1 for SpanningTree/Gnp, n ≥ 2 for
// BarabasiAlbert).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("gen: too few nodes")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrInvalidAttachment indicates a Barabási–Albert attachment degree m
// outside the valid range 1 ≤ m < n.
var ErrInvalidAttachment = errors.New("gen: attachment degree out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// an RNG (neither WithSeed nor WithRand was supplied). The spanning tree is
// always stochastic, so SpanningTree and Gnp require an RNG for every
// parameter combination, including p ∈ {0, 1}.
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates the delegated preferential-attachment
// generator reported a failure or produced a node outside [0, n). The
// wrapped message carries the underlying cause.
var ErrConstructFailed = errors.New("gen: construction failed")
