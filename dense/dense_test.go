// Package dense_test contains unit tests for the Grid container: shape
// validation, ingestion policy, indexers and copy semantics.
package dense_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/num"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsBadShape ensures that New rejects non-positive dimensions
// and nil fields.
func TestNewRejectsBadShape(t *testing.T) {
	_, err := dense.New(num.Real64(), 0)
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.New(num.Real64(), -3)
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.New[float64](nil, 2)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestFromFloatsShapePolicy ensures ragged and empty inputs are rejected.
func TestFromFloatsShapePolicy(t *testing.T) {
	f := num.Real64()

	_, err := dense.FromFloats(f, [][]float64{})
	require.ErrorIs(t, err, dense.ErrBadShape) // empty input

	_, err = dense.FromFloats(f, [][]float64{{1, 2}, {3}}) // ragged row
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.FromFloats(f, [][]float64{{1, 2, 3}, {4, 5, 6}}) // non-square
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestIngestionRejectsNaNInf pins the finiteness policy at every boundary:
// constructor rows and Set.
func TestIngestionRejectsNaNInf(t *testing.T) {
	f := num.Real64()

	_, err := dense.FromRows(f, [][]float64{{1, math.NaN()}, {0, 1}})
	require.ErrorIs(t, err, dense.ErrNaNInf)

	_, err = dense.FromRows(f, [][]float64{{1, 0}, {math.Inf(-1), 1}})
	require.ErrorIs(t, err, dense.ErrNaNInf)

	g, err := dense.New(f, 2)
	require.NoError(t, err)
	require.ErrorIs(t, g.Set(0, 0, math.NaN()), dense.ErrNaNInf)
	require.ErrorIs(t, g.Set(1, 1, math.Inf(1)), dense.ErrNaNInf)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange rather
// than panicking on invalid indices.
func TestAtSetOutOfRange(t *testing.T) {
	g, err := dense.New(num.Real64(), 2)
	require.NoError(t, err)

	_, err = g.At(-1, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = g.At(0, 2)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	require.ErrorIs(t, g.Set(2, 0, 1), dense.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, 1), dense.ErrOutOfRange)
}

// TestSetAtRoundTrip validates Set followed by At on valid indices.
func TestSetAtRoundTrip(t *testing.T) {
	g, err := dense.New(num.Real64(), 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 7.5))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not
// share storage with the original.
func TestCloneIndependence(t *testing.T) {
	g, err := dense.FromFloats(num.Real64(), [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	orig, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original untouched
}

// TestRowCopySemantics ensures Row hands out a copy, not a window.
func TestRowCopySemantics(t *testing.T) {
	g, err := dense.FromFloats(num.Real64(), [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := g.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 99
	v, err := g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = g.Row(2)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestIdentity verifies the identity constructor across a non-float backend.
func TestIdentity(t *testing.T) {
	d := num.NewDec()
	ident, err := dense.Identity(d, 3)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, atErr := ident.At(i, j)
			require.NoError(t, atErr)
			if i == j {
				require.Equal(t, 0, d.Cmp(d.One(), v))
			} else {
				require.True(t, d.IsZero(v))
			}
		}
	}
}

// TestGridGenericBackends ensures the container works identically for the
// decimal backend (pointer-typed elements).
func TestGridGenericBackends(t *testing.T) {
	d := num.NewDec()
	g, err := dense.FromFloats[*apd.Decimal](d, [][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())

	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, d.Cmp(d.FromFloat64(2), v))
}

// TestVecHelpers covers the float64 bridge for vectors.
func TestVecHelpers(t *testing.T) {
	d := num.NewDec()
	v := dense.VecFromFloats(d, []float64{1, 2.5, -3})
	require.Len(t, v, 3)
	require.Equal(t, []float64{1, 2.5, -3}, dense.VecToFloats(d, v))

	cp := dense.CloneVec(v)
	cp[0] = d.FromFloat64(42)
	require.Equal(t, 0, d.Cmp(d.One(), v[0])) // original untouched
}
