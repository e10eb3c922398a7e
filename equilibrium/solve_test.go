// SPDX-License-Identifier: MIT

// Package equilibrium_test verifies the Friedkin–Johnsen solve against
// hand-computed fixtures, the degenerate identities required of the model,
// and the sentinel-error surface.
package equilibrium_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/nvoulgaris/opinet/equilibrium"
	"github.com/nvoulgaris/opinet/gen"
	"github.com/nvoulgaris/opinet/matrix"
)

const epsTight = 1e-12

func TestSolve_SingleFullyStubbornNode(t *testing.T) {
	t.Parallel()

	// N=1, A=[[1]], s=[5]: full stubbornness leaves the belief unchanged.
	a := mat.NewDense(1, 1, []float64{1})
	x, err := equilibrium.Solve(a, []float64{5})
	require.NoError(t, err)
	require.Len(t, x, 1)
	assert.InDelta(t, 5.0, x[0], epsTight)
}

func TestSolve_FullyStubbornNetwork(t *testing.T) {
	t.Parallel()

	// B = A with unit stubbornness and zero off-diagonal influence: the
	// system matrix is the identity and x == s exactly.
	const n = 4
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	s := []float64{-1, 0.5, 3, 42}

	x, err := equilibrium.Solve(a, s)
	require.NoError(t, err)
	assert.Equal(t, s, x, "identity system must reproduce s exactly")
}

func TestSolve_TwoNodeAnalytic(t *testing.T) {
	t.Parallel()

	// Stubbornness 0.5 each, mutual influence 0.5:
	//   M = [[1, -0.5], [-0.5, 1]], rhs = [0.5, 0].
	// M⁻¹ = 1/0.75 · [[1, 0.5], [0.5, 1]], so x = [2/3, 1/3].
	a := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.5, 0.5,
	})
	s := []float64{1, 0}

	x, err := equilibrium.Solve(a, s)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, x[0], 1e-9)
	assert.InDelta(t, 1.0/3.0, x[1], 1e-9)
}

func TestSolve_ConsensusPullsBeliefsTogether(t *testing.T) {
	t.Parallel()

	// A weakly stubborn pair with symmetric influence: equilibrium beliefs
	// must lie strictly between the intrinsic extremes.
	a := mat.NewDense(2, 2, []float64{
		0.1, 0.6,
		0.6, 0.1,
	})
	s := []float64{0, 1}

	x, err := equilibrium.Solve(a, s)
	require.NoError(t, err)
	assert.Greater(t, x[0], s[0])
	assert.Less(t, x[1], s[1])
	assert.Less(t, x[0], x[1], "ordering of beliefs is preserved")
}

func TestSolve_SingularSystem(t *testing.T) {
	t.Parallel()

	// Zero stubbornness with unit mutual influence:
	//   M = [[1, -1], [-1, 1]] is singular — the dynamics never settle.
	a := mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	})

	_, err := equilibrium.Solve(a, []float64{1, -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, equilibrium.ErrSingularSystem), "got %v", err)
}

func TestSolve_ShapeErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil matrix", func(t *testing.T) {
		t.Parallel()
		_, err := equilibrium.Solve(nil, []float64{1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, matrix.ErrNilMatrix))
	})

	t.Run("non-square", func(t *testing.T) {
		t.Parallel()
		_, err := equilibrium.Solve(mat.NewDense(2, 3, nil), []float64{1, 2})
		require.Error(t, err)
		assert.True(t, errors.Is(err, matrix.ErrNonSquare))
	})

	t.Run("vector length", func(t *testing.T) {
		t.Parallel()
		_, err := equilibrium.Solve(mat.NewDense(2, 2, nil), []float64{1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	})
}

func TestSolve_InputsNotMutated(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{0.5, 0.2, 0.3, 0.5})
	orig := mat.DenseCopyOf(a)
	s := []float64{1, 2}

	_, err := equilibrium.Solve(a, s)
	require.NoError(t, err)
	assert.True(t, mat.Equal(orig, a), "A must not be mutated")
	assert.Equal(t, []float64{1, 2}, s, "s must not be mutated")
}

func TestSolve_OnGeneratedNetwork(t *testing.T) {
	t.Parallel()

	// End-to-end over a generated weighted network: normalize, install
	// stubbornness on the diagonal, rescale rows so diag + off-diag mass
	// stays row-stochastic, and solve. Equilibrium beliefs must remain in
	// the convex hull of the intrinsic beliefs.
	const (
		n    = 12
		stub = 0.3
	)
	g, err := gen.Gnp(n, 0.4, gen.WithSeed(21), gen.WithRandomWeights())
	require.NoError(t, err)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				a.Set(i, i, stub)
				continue
			}
			a.Set(i, j, (1-stub)*g.At(i, j))
		}
	}

	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i) / float64(n-1) // beliefs spread over [0,1]
	}

	x, err := equilibrium.Solve(a, s)
	require.NoError(t, err)
	for i, v := range x {
		assert.GreaterOrEqual(t, v, -epsTight, "belief %d below hull", i)
		assert.LessOrEqual(t, v, 1+epsTight, "belief %d above hull", i)
	}
}
