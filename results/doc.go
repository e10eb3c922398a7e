// SPDX-License-Identifier: MIT

// Package results persists simulation inputs and outputs to a directory.
//
// A Store is rooted at one directory. Save writes each numeric field —
// belief vectors as []float64, adjacency or equilibrium matrices as
// *mat.Dense — to its own whitespace-delimited text file named
// {simID}_{field}.txt with 4 decimal digits of precision. Every other field
// is collected into a JSON metadata object, stamped with the current
// datetime, and written as {simID}_metadata.txt.
//
// If a metadata file for the same simulation id already exists, the id is
// suffixed with "_duplicate" before writing so earlier results are never
// overwritten.
package results
