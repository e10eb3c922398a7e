// SPDX-License-Identifier: MIT

// Package edgelist loads graphs from delimited edge-list text files such as
// those published by Stanford's SNAP collection.
//
// An edge list is a plain-text file with one edge per line: two integer node
// identifiers separated by whitespace (or a custom delimiter). Lines starting
// with the comment prefix (default '#', SNAP's convention) and blank lines
// are skipped. Node identifiers need not be contiguous; they are compacted
// to a dense 0..N−1 index in first-seen order, and the result is a symmetric
// binary adjacency matrix plus its node count.
package edgelist
