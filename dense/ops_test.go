// Package dense_test: structural operation laws (addition, multiplication,
// transpose, equality) and the ErrorSet diagnostics.
package dense_test

import (
	"testing"

	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/num"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a float64 Grid or fails the test.
func mustGrid(t *testing.T, rows [][]float64) *dense.Grid[float64] {
	t.Helper()
	g, err := dense.FromFloats(num.Real64(), rows)
	require.NoError(t, err)

	return g
}

// TestAddSub checks elementwise sum/difference and that A + B - B == A.
func TestAddSub(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustGrid(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	v, err := sum.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)

	back, err := dense.Sub(sum, b)
	require.NoError(t, err)
	eq, err := dense.Equal(back, a)
	require.NoError(t, err)
	require.True(t, eq) // exact for integer-valued inputs

	small := mustGrid(t, [][]float64{{1}})
	_, err = dense.Add(a, small)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestMulAgainstHand checks a 2x2 product against hand-computed values and
// the identity law A·I = A.
func TestMulAgainstHand(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustGrid(t, [][]float64{{5, 6}, {7, 8}})

	p, err := dense.Mul(a, b)
	require.NoError(t, err)
	want := mustGrid(t, [][]float64{{19, 22}, {43, 50}})
	eq, err := dense.Equal(p, want)
	require.NoError(t, err)
	require.True(t, eq)

	ident, err := dense.Identity(num.Real64(), 2)
	require.NoError(t, err)
	ai, err := dense.Mul(a, ident)
	require.NoError(t, err)
	eq, err = dense.Equal(ai, a)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestMatVec checks y = A·x against hand-computed values and the length guard.
func TestMatVec(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})

	y, err := dense.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)

	_, err = dense.MatVec(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.MatVec(a, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestTransposeRoundTrip pins the law (Aᵀ)ᵀ == A exactly: transpose moves
// elements and never recomputes them, so the round trip is bit-identical
// for every backend.
func TestTransposeRoundTrip(t *testing.T) {
	a := mustGrid(t, [][]float64{{1.5, -2, 0.25}, {3, 0, 7}, {-1, 2, 9}})

	tr, err := dense.Transpose(a)
	require.NoError(t, err)
	v, err := tr.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // (0,1) of Aᵀ is (1,0) of A

	back, err := dense.Transpose(tr)
	require.NoError(t, err)
	eq, err := dense.Equal(back, a)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestEqual covers exact equality and the size-difference shortcut.
func TestEqual(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	c := mustGrid(t, [][]float64{{1, 2}, {3, 5}})

	eq, err := dense.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = dense.Equal(a, c)
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = dense.Equal(a, mustGrid(t, [][]float64{{1}}))
	require.NoError(t, err)
	require.False(t, eq) // size mismatch is inequality, not an error
}

// TestNilOperands ensures every operation fails fast on nil grids.
func TestNilOperands(t *testing.T) {
	a := mustGrid(t, [][]float64{{1}})

	_, err := dense.Add(nil, a)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Mul(a, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Transpose[float64](nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Equal[float64](nil, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestErrorSet checks the statistics against hand-computed values.
func TestErrorSet(t *testing.T) {
	es, err := dense.NewErrorSet([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	require.NoError(t, err)
	require.InDelta(t, 0.5, es.Mean, 1e-15)              // (0 + 0.5 + 1) / 3
	require.InDelta(t, (0.25+1)/3.0, es.MSE, 1e-15)      // (0 + 0.25 + 1) / 3
	require.Equal(t, 1.0, es.Max)

	_, err = dense.NewErrorSet([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.NewErrorSet(nil, nil)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestErrorSetMerge checks equal-weight folding of two ErrorSets.
func TestErrorSetMerge(t *testing.T) {
	a, err := dense.NewErrorSet([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	b, err := dense.NewErrorSet([]float64{0, 0}, []float64{3, 3})
	require.NoError(t, err)

	m := a.Merge(b)
	require.InDelta(t, 2.0, m.Mean, 1e-15) // (1 + 3) / 2
	require.Equal(t, 3.0, m.Max)
}
