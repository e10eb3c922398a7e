// SPDX-License-Identifier: MIT
// Package edgelist: delimited edge-list loader.
//
// Contract:
//   - Missing path fails with ErrFileNotFound; other I/O failures are
//     returned as-is with context.
//   - Each non-blank, non-comment line must parse as two integer ids
//     (else ErrBadEdgeLine, carrying the line number).
//   - Ids are interned to 0..N−1 in first-seen order; edges are written
//     symmetrically with weight 1. Duplicate edges collapse into one cell.
//   - A file with zero edges fails with ErrEmptyEdgeList.
//
// Complexity: O(L) scan over L lines plus an O(N²) matrix allocation.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const methodFromFile = "FromFile"

// Option mutates the loader configuration.
type Option func(*config)

type config struct {
	// delimiter splits each line; empty means any run of whitespace.
	delimiter string
	// comment prefixes lines to skip; zero disables comment handling.
	comment rune
}

// defaultComment follows SNAP's convention of '#'-prefixed header lines.
const defaultComment = '#'

func newConfig(opts ...Option) config {
	cfg := config{delimiter: "", comment: defaultComment}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDelimiter sets an explicit field delimiter (e.g. "," or "\t") instead
// of the default whitespace splitting. Panics on the empty string.
func WithDelimiter(d string) Option {
	if d == "" {
		panic("edgelist: WithDelimiter: delimiter must be non-empty")
	}
	return func(cfg *config) { cfg.delimiter = d }
}

// WithComment overrides the comment prefix rune; pass 0 to disable comment
// skipping entirely.
func WithComment(r rune) Option {
	return func(cfg *config) { cfg.comment = r }
}

// FromFile reads the edge list at path and returns the symmetric binary
// adjacency matrix of the graph together with its node count N.
func FromFile(path string, opts ...Option) (*mat.Dense, int, error) {
	cfg := newConfig(opts...)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%s: %q: %w", methodFromFile, path, ErrFileNotFound)
		}
		return nil, 0, fmt.Errorf("%s: open %q: %w", methodFromFile, path, err)
	}
	defer f.Close()

	// First pass over lines: parse endpoints and intern raw ids to a dense
	// 0..N-1 index in first-seen order.
	type edge struct{ u, v int }

	ids := make(map[int]int)
	intern := func(raw int) int {
		if id, ok := ids[raw]; ok {
			return id
		}
		id := len(ids)
		ids[raw] = id
		return id
	}

	var (
		edges  []edge
		lineNo int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if cfg.comment != 0 && strings.HasPrefix(line, string(cfg.comment)) {
			continue
		}

		u, v, err := parseEndpoints(line, cfg.delimiter)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: line %d: %v: %w", methodFromFile, lineNo, err, ErrBadEdgeLine)
		}
		edges = append(edges, edge{u: intern(u), v: intern(v)})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: scan %q: %w", methodFromFile, path, err)
	}

	n := len(ids)
	if n == 0 {
		return nil, 0, fmt.Errorf("%s: %q: %w", methodFromFile, path, ErrEmptyEdgeList)
	}

	// Second pass over parsed edges: symmetric binary writes.
	a := mat.NewDense(n, n, nil)
	for _, e := range edges {
		a.Set(e.u, e.v, 1)
		a.Set(e.v, e.u, 1)
	}

	return a, n, nil
}

// parseEndpoints extracts the two leading integer fields of a line.
// Extra trailing fields (timestamps, weights) are tolerated and ignored.
func parseEndpoints(line, delimiter string) (int, int, error) {
	var fields []string
	if delimiter == "" {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, delimiter)
	}
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}

	u, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("first id %q: %v", fields[0], err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("second id %q: %v", fields[1], err)
	}
	return u, v, nil
}
