// SPDX-License-Identifier: MIT

// Package solve: LU decomposition with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate the Grid, clone it into a working copy, optionally
//     equilibrate rows (scale.go).
//   - Stage 2: For each pivot column k, pick the largest |entry| among rows
//     >= k (partial pivoting), swap rows (recording the swap for the
//     permutation and the pivot-sign parity), then eliminate below the
//     pivot storing multipliers in the vacated lower-triangular positions.
//
// Behavior highlights:
//   - A pivot magnitude at or below the backend's PivotTol transitions the
//     factorization to Singular and stops: determinant becomes zero, solve
//     reports ErrSingular, cond reports +Inf. An all-zero row hits this on
//     its first candidate column.
//   - Near-zero pivots above the bound are accepted; they degrade accuracy,
//     which is what the refinement loop exists to repair.
//   - The caller's Grid is never written; all elimination happens on the
//     call-local packed copy.
//
// Determinism:
//   - Fixed k→i→j loops; ties in the pivot search resolve to the smallest
//     row index, so permutations are reproducible per backend.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the packed factors.

package solve

import (
	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/num"
)

// State enumerates the factorization lifecycle.
type State uint8

const (
	// StateUnfactored is the zero state: no elimination has run.
	StateUnfactored State = iota
	// StateInProgress marks an elimination that is currently running.
	StateInProgress
	// StateFactored marks a completed, usable factorization.
	StateFactored
	// StateSingular marks an elimination stopped by a negligible pivot.
	StateSingular
)

// String implements fmt.Stringer for diagnostics.
func (s State) String() string {
	switch s {
	case StateUnfactored:
		return "Unfactored"
	case StateInProgress:
		return "InProgress"
	case StateFactored:
		return "Factored"
	case StateSingular:
		return "Singular"
	default:
		return "Unknown"
	}
}

// kind discriminates the two factorization families.
type kind uint8

const (
	kindLU kind = iota
	kindCholesky
)

// Factorization is the ephemeral artifact of decomposing a Grid: packed
// triangular factors, the row-swap record, the pivot-sign parity and the
// scale vector (when equilibration ran). It is created per call, never
// mutated after Factor returns, and never exposes caller-owned storage.
type Factorization[T any] struct {
	f     num.Field[T]
	kind  kind
	state State
	n     int

	// packed holds, row-major:
	//   LU: multipliers strictly below the diagonal, U on and above.
	//   Cholesky: L on and below the diagonal, zeros above.
	packed []T

	// perm[k] is the row swapped into position k at step k (LAPACK ipiv
	// convention). nil for Cholesky.
	perm []int

	// pivSign is +1 or -1 depending on the parity of row swaps.
	pivSign int

	// scale holds the equilibration factors; nil when scaling was off.
	scale []T
}

// State reports the lifecycle state of the factorization.
func (fa *Factorization[T]) State() State { return fa.state }

// Singular reports whether elimination stopped on a negligible pivot.
func (fa *Factorization[T]) Singular() bool { return fa.state == StateSingular }

// Size returns the dimension n of the factored system.
func (fa *Factorization[T]) Size() int { return fa.n }

// PivotSign returns the permutation parity (+1 or -1). For Cholesky it is
// always +1 (no pivoting).
func (fa *Factorization[T]) PivotSign() int { return fa.pivSign }

// Perm returns a copy of the row-swap record (nil for Cholesky).
func (fa *Factorization[T]) Perm() []int {
	if fa.perm == nil {
		return nil
	}
	out := make([]int, len(fa.perm))
	copy(out, fa.perm)

	return out
}

// Scaled reports whether row equilibration was applied before elimination.
func (fa *Factorization[T]) Scaled() bool { return fa.scale != nil }

// FactorLU decomposes a square Grid into packed LU factors with partial
// pivoting and optional row equilibration (WithScaling).
//
// A singular matrix is NOT an error here: the returned Factorization is in
// StateSingular, its determinant is zero and solving through it reports
// ErrSingular. Hard failures are structural only (nil grid).
func FactorLU[T any](m *dense.Grid[T], opts ...Option) (*Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opFactorLU, err)
	}
	o := gatherOptions(opts...)

	f := m.Field()
	n := m.Size()
	fa := &Factorization[T]{
		f:       f,
		kind:    kindLU,
		state:   StateInProgress,
		n:       n,
		packed:  m.Clone().Raw(),
		perm:    make([]int, n),
		pivSign: 1,
	}

	if o.scaling {
		fa.scale = computeScale(f, fa.packed, n)
		applyScale(f, fa.packed, n, fa.scale)
	}

	tol := f.PivotTol()
	var k, i, j, p int
	var mag, biggest T
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |entry| in column k among rows >= k.
		p = k
		biggest = f.Abs(fa.packed[k*n+k])
		for i = k + 1; i < n; i++ {
			mag = f.Abs(fa.packed[i*n+k])
			if f.Cmp(mag, biggest) > 0 {
				biggest = mag
				p = i
			}
		}

		// Degeneracy: nothing usable to pivot on.
		if f.Cmp(biggest, tol) <= 0 {
			fa.state = StateSingular
			fa.perm[k] = k

			return fa, nil
		}

		fa.perm[k] = p
		if p != k {
			swapRows(fa.packed, n, k, p)
			fa.pivSign = -fa.pivSign
		}

		// Eliminate below the pivot; multipliers live in the vacated slots.
		pivot := fa.packed[k*n+k]
		for i = k + 1; i < n; i++ {
			if f.IsZero(fa.packed[i*n+k]) {
				fa.packed[i*n+k] = f.Zero()
				continue
			}
			mult, err := f.Div(fa.packed[i*n+k], pivot)
			if err != nil {
				// Unreachable after the pivot check; treat as degenerate.
				fa.state = StateSingular

				return fa, nil
			}
			fa.packed[i*n+k] = mult
			for j = k + 1; j < n; j++ {
				fa.packed[i*n+j] = f.Sub(fa.packed[i*n+j], f.Mul(mult, fa.packed[k*n+j]))
			}
		}
	}

	fa.state = StateFactored

	return fa, nil
}

// swapRows exchanges rows a and b of a row-major n×n slice.
func swapRows[T any](data []T, n, a, b int) {
	ra, rb := a*n, b*n
	for j := 0; j < n; j++ {
		data[ra+j], data[rb+j] = data[rb+j], data[ra+j]
	}
}
