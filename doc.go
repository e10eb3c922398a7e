// Package opinet is a numerical core for opinion-dynamics experiments over
// random networks: generate a topology with guaranteed connectivity, then
// evaluate the closed-form equilibrium of the Friedkin–Johnsen model on it.
//
// 🚀 What is opinet?
//
//	A small, deterministic-by-seed library built on gonum that provides:
//		• Topology generators: random spanning trees, connected G(N,p),
//		  Barabási–Albert preferential attachment
//		• Matrix operations: row-stochastic normalization, mean degree
//		• Equilibrium solver: Friedkin–Johnsen fixed point via dense LU
//		• Weighted sampling: a discrete-choice primitive with strict
//		  failure semantics
//		• I/O shims: SNAP-style edge-list loading, per-run result store
//
// ✨ Why choose opinet?
//
//   - Explicit randomness – every stochastic call takes WithSeed/WithRand;
//     no package-level RNG state, fully reproducible fixtures
//   - Strict contracts – sentinel errors per package, errors.Is discipline,
//     no silent repair of malformed inputs
//   - Pure functions – immutable inputs, freshly allocated outputs, safe to
//     call concurrently on disjoint data without locks
//
// Everything is organized under six subpackages:
//
//	sample/      — weighted index draws over discrete distributions
//	matrix/      — adjacency-matrix ops + the module's shape validators
//	gen/         — spanning tree, connected G(N,p), Barabási–Albert
//	equilibrium/ — Friedkin–Johnsen closed-form solve
//	edgelist/    — delimited edge-list loader
//	results/     — directory-backed persistence of simulation runs
//
// Typical flow:
//
//	gen.Gnp ──▶ matrix.RowStochastic ──▶ equilibrium.Solve ──▶ results.Store
//
// Generate a connected network, overload its diagonal with per-node
// stubbornness, hand it to the solver with an intrinsic-belief vector, and
// persist what came out.
package opinet
