// SPDX-License-Identifier: MIT

// Package solve: derived scalar quantities.
//
// Implementation:
//   - Determinant reads the factorization: the product of the U diagonal
//     times the permutation parity for LU, the squared product of the L
//     diagonal for Cholesky. When equilibration ran, the recorded scale
//     product is divided back out so the result refers to the original
//     matrix.
//   - Norm is the infinity norm (maximum absolute row sum), always read
//     from the original Grid, never from factors.
//   - Cond is ‖A‖∞·‖A⁻¹‖∞ with the inverse obtained by solving against
//     the identity. A singular matrix has condition +Inf, reported as a
//     VALUE, not an error: "how ill is this matrix" is a question with an
//     answer even when solving is impossible.
//
// Complexity:
//   - Determinant O(n) over existing factors, Norm O(n²), Cond O(n³).

package solve

import (
	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/num"
)

// Determinant reads det(A) off the packed factors. A StateSingular
// factorization reports an exact zero with no error; any other
// non-Factored state reports ErrNotFactored.
func (fa *Factorization[T]) Determinant() (T, error) {
	f := fa.f
	switch fa.state {
	case StateSingular:
		return f.Zero(), nil
	case StateFactored:
		// proceed
	default:
		return f.Zero(), opErrorf(opDeterminant, ErrNotFactored)
	}

	det := f.One()
	for i := 0; i < fa.n; i++ {
		det = f.Mul(det, fa.packed[i*fa.n+i])
	}
	if fa.kind == kindCholesky {
		return f.Mul(det, det), nil
	}
	if fa.pivSign < 0 {
		det = f.Neg(det)
	}
	if fa.scale != nil {
		// det(S·A) = Πsᵢ · det(A); undo the equilibration factors.
		prod := f.One()
		for i := 0; i < fa.n; i++ {
			prod = f.Mul(prod, fa.scale[i])
		}
		unscaled, err := f.Div(det, prod)
		if err != nil {
			return f.Zero(), opErrorf(opDeterminant, err)
		}
		det = unscaled
	}

	return det, nil
}

// Determinant computes det(m) via LU with partial pivoting. Singular
// matrices report an exact zero, not an error. Respects WithScaling.
func Determinant[T any](m *dense.Grid[T], opts ...Option) (T, error) {
	var zero T
	fa, err := FactorLU(m, opts...)
	if err != nil {
		return zero, err
	}

	return fa.Determinant()
}

// Norm returns the infinity norm of m: the maximum absolute row sum.
func Norm[T any](m *dense.Grid[T]) (T, error) {
	var zero T
	if err := dense.ValidateNotNil(m); err != nil {
		return zero, opErrorf(opNorm, err)
	}

	return infNormGrid(m.Field(), m.Raw(), m.Size()), nil
}

// Cond returns the infinity-norm condition number ‖m‖∞·‖m⁻¹‖∞.
// A singular matrix reports +Inf with a nil error.
func Cond[T any](m *dense.Grid[T], opts ...Option) (T, error) {
	var zero T
	if err := dense.ValidateNotNil(m); err != nil {
		return zero, opErrorf(opCond, err)
	}
	f := m.Field()

	fa, err := FactorLU(m, opts...)
	if err != nil {
		return zero, err
	}
	if fa.Singular() {
		return f.Inf(1), nil
	}

	ident, err := dense.Identity(f, m.Size())
	if err != nil {
		return zero, err
	}
	inv, err := fa.SolveGrid(ident)
	if err != nil {
		return zero, err
	}

	nrmA := infNormGrid(f, m.Raw(), m.Size())
	nrmInv := infNormGrid(f, inv.Raw(), inv.Size())

	return f.Mul(nrmA, nrmInv), nil
}

// infNormVec returns max|vᵢ|.
func infNormVec[T any](f num.Field[T], v []T) T {
	biggest := f.Zero()
	var mag T
	for i := range v {
		mag = f.Abs(v[i])
		if f.Cmp(mag, biggest) > 0 {
			biggest = mag
		}
	}

	return biggest
}

// infNormGrid returns the maximum absolute row sum of a row-major n×n slice.
func infNormGrid[T any](f num.Field[T], data []T, n int) T {
	biggest := f.Zero()
	var i, j int
	var sum T
	for i = 0; i < n; i++ {
		sum = f.Zero()
		base := i * n
		for j = 0; j < n; j++ {
			sum = f.Add(sum, f.Abs(data[base+j]))
		}
		if f.Cmp(sum, biggest) > 0 {
			biggest = sum
		}
	}

	return biggest
}
