// SPDX-License-Identifier: MIT
// Package edgelist: sentinel errors.

package edgelist

import "errors"

// ErrFileNotFound indicates the edge-list path does not exist.
// Usage: if errors.Is(err, ErrFileNotFound) { /* check the path */ }.
var ErrFileNotFound = errors.New("edgelist: file not found")

// ErrBadEdgeLine indicates a non-comment line that does not parse as two
// integer node identifiers. The wrapped message carries the line number.
var ErrBadEdgeLine = errors.New("edgelist: malformed edge line")

// ErrEmptyEdgeList indicates the file contained no edges at all; there is no
// meaningful adjacency matrix of order zero to return.
var ErrEmptyEdgeList = errors.New("edgelist: no edges in file")
