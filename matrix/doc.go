// SPDX-License-Identifier: MIT

// Package matrix provides adjacency-matrix operations shared across the
// module: row-stochastic normalization, mean-degree computation, and the
// canonical shape validators used by gen, equilibrium and edgelist.
//
// All operations work on gonum's *mat.Dense. An adjacency matrix here is an
// N×N real matrix: entry (i,j) > 0 denotes an edge of that weight, zero
// denotes absence, binary graphs use weight 1. Inputs are never mutated;
// every operation allocates a fresh result.
//
// Dense matrices are the right fit for the graphs this module generates,
// where O(N²) memory is accepted by contract.
package matrix
