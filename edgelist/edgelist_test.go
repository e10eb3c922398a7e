// SPDX-License-Identifier: MIT

// Package edgelist_test exercises the loader against files written into a
// test temp dir: id compaction, symmetry, delimiters, comments, and the
// sentinel-error surface.
package edgelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoulgaris/opinet/edgelist"
)

// writeFile drops content into a fresh file under t.TempDir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFile_Basic(t *testing.T) {
	t.Parallel()

	// Triangle over sparse raw ids; compaction is first-seen order:
	// 10→0, 20→1, 30→2.
	path := writeFile(t, "triangle.txt", "10 20\n20 30\n30 10\n")

	a, n, err := edgelist.FromFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	r, c := a.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i != j {
				want = 1.0
			}
			assert.Equal(t, want, a.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

func TestFromFile_SymmetryAndDuplicates(t *testing.T) {
	t.Parallel()

	// The same edge listed both ways collapses into one symmetric pair.
	path := writeFile(t, "dup.txt", "0 1\n1 0\n0 1\n")

	a, n, err := edgelist.FromFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, 1.0, a.At(0, 1))
	assert.Equal(t, 1.0, a.At(1, 0))
}

func TestFromFile_CommentsAndBlanks(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "snap.txt",
		"# Nodes: 2 Edges: 1\n\n0 1\n")

	_, n, err := edgelist.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFromFile_CustomDelimiter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "csv.txt", "1,2\n2,3\n")

	_, n, err := edgelist.FromFile(path, edgelist.WithDelimiter(","))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFromFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, _, err := edgelist.FromFile(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, edgelist.ErrFileNotFound))
	})

	t.Run("malformed line", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.txt", "0 1\nnot-an-id 2\n")
		_, _, err := edgelist.FromFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, edgelist.ErrBadEdgeLine))
	})

	t.Run("single field", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "short.txt", "42\n")
		_, _, err := edgelist.FromFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, edgelist.ErrBadEdgeLine))
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "empty.txt", "# only a header\n")
		_, _, err := edgelist.FromFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, edgelist.ErrEmptyEdgeList))
	})
}

func TestFromFile_TrailingFieldsTolerated(t *testing.T) {
	t.Parallel()

	// SNAP temporal lists carry extra columns; only the first two matter.
	path := writeFile(t, "temporal.txt", "0 1 1082040961\n1 2 1082155839\n")

	_, n, err := edgelist.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
