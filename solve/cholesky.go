// SPDX-License-Identifier: MIT

// Package solve: Cholesky decomposition A = L·Lᵗ for symmetric
// positive-definite systems.
//
// Implementation:
//   - Column-oriented outer-product form: for each column j, subtract the
//     squared prefix of row j from the diagonal entry, take its square
//     root, then update the subdiagonal of the column.
//   - Only the lower triangle of the input is read; the strict upper
//     triangle of the packed result is zeroed so the factors print cleanly.
//
// Behavior highlights:
//   - A non-positive diagonal value before the square root means the input
//     is not positive definite; FactorCholesky returns ErrNotPositiveDefinite
//     immediately. Unlike LU singularity, this is a hard error: there is no
//     meaningful determinant or solution to report through a broken L.
//   - Symmetry of the input is trusted, not verified; callers wanting the
//     check can compare m against its Transpose with dense.Equal first.
//   - No pivoting and no scaling: positive definiteness already bounds the
//     diagonal growth, so the equilibration option is ignored here.
//
// Complexity:
//   - Time O(n³/3), Space O(n²) for the packed factor.

package solve

import (
	"github.com/katalvlaran/densolve/dense"
)

// FactorCholesky decomposes a symmetric positive-definite Grid into a packed
// lower-triangular factor L with A = L·Lᵗ.
//
// Returns ErrNotPositiveDefinite (wrapped) when a pivot fails to be strictly
// positive, which is simultaneously the non-PD detector.
func FactorCholesky[T any](m *dense.Grid[T], opts ...Option) (*Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, err
	}
	_ = gatherOptions(opts...) // accepted for signature symmetry with FactorLU

	f := m.Field()
	n := m.Size()
	fa := &Factorization[T]{
		f:       f,
		kind:    kindCholesky,
		state:   StateInProgress,
		n:       n,
		packed:  m.Clone().Raw(),
		pivSign: 1,
	}

	var i, j, k int
	var sum T
	for j = 0; j < n; j++ {
		// d = A[j][j] - Σ_{k<j} L[j][k]².
		sum = fa.packed[j*n+j]
		for k = 0; k < j; k++ {
			sum = f.Sub(sum, f.Mul(fa.packed[j*n+k], fa.packed[j*n+k]))
		}
		if f.Sign(sum) <= 0 {
			fa.state = StateSingular

			return nil, opErrorf(opFactorCholesky, ErrNotPositiveDefinite)
		}
		d, err := f.Sqrt(sum)
		if err != nil {
			return nil, opErrorf(opFactorCholesky, ErrNotPositiveDefinite)
		}
		fa.packed[j*n+j] = d

		// Column update: L[i][j] = (A[i][j] - Σ_{k<j} L[i][k]·L[j][k]) / d.
		for i = j + 1; i < n; i++ {
			sum = fa.packed[i*n+j]
			for k = 0; k < j; k++ {
				sum = f.Sub(sum, f.Mul(fa.packed[i*n+k], fa.packed[j*n+k]))
			}
			q, qErr := f.Div(sum, d)
			if qErr != nil {
				return nil, opErrorf(opFactorCholesky, ErrNotPositiveDefinite)
			}
			fa.packed[i*n+j] = q
		}

		// Keep the strict upper triangle clean.
		for k = j + 1; k < n; k++ {
			fa.packed[j*n+k] = f.Zero()
		}
	}

	fa.state = StateFactored

	return fa, nil
}
