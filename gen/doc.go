// SPDX-License-Identifier: MIT

// Package gen constructs random network topologies as dense adjacency
// matrices (gonum *mat.Dense).
//
// Constructors:
//
//   - SpanningTree(n): a uniformly random permutation chain over n nodes —
//     connected, acyclic, exactly n−1 undirected edges by construction.
//   - Gnp(n, p): a connected Erdős–Rényi-style graph. A spanning tree
//     guarantees connectivity independent of p; every remaining ordered pair
//     is then included with independent probability p. Pairs already joined
//     by the tree are deliberately re-sampled, so p controls additional
//     density on top of the tree rather than total density in closed form.
//   - BarabasiAlbert(n, m, seed): a scale-free preferential-attachment graph,
//     delegated to gonum's graph/graphs/gen generator and converted to a
//     dense binary adjacency matrix.
//
// Modes and determinism:
//
//   - WithRandomWeights switches SpanningTree and Gnp from binary (weight 1)
//     to independent uniform weights in (0,1); Gnp additionally normalizes
//     the weighted result row-stochastically.
//   - Every stochastic constructor requires an explicit RNG (WithSeed or
//     WithRand). There is no package-level random state: equal seeds and
//     parameters yield identical matrices.
//   - WithObserver installs a callback receiving the node count and mean
//     degree of each generated graph — an observational side effect with no
//     influence on the returned matrix.
//
// All constructors validate parameters first and return sentinel errors;
// they never panic at runtime.
package gen
