// SPDX-License-Identifier: MIT
// Package dense provides universal operations on Grids: element-wise
// addition, subtraction, matrix multiplication, matrix-vector products,
// transpose and exact equality. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the structural kernels the solver and its tests lean on
//     (residual assembly, identity round-trips, transpose laws).
//   - Define operation tags and shared wrapping for deterministic error
//     reporting.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via
//     opErrorf at the facade.
//   - Loop orders are fixed (i→j, i→k→j) so results are reproducible for
//     every Field, including inexact ones.

package dense

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opEqual     = "Equal"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical dimension. A fresh Grid is allocated; operands
// are not mutated. Internal helper for Add/Sub sharing validation and the
// flat loop.
func addSub[T any](a, b *Grid[T], negate bool, opTag string) (*Grid[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res, err := New(a.f, a.n)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Single flat loop over the backing slices; deterministic 0..n²-1.
	f := a.f
	for idx := range res.data {
		if negate {
			res.data[idx] = f.Sub(a.data[idx], b.data[idx])
		} else {
			res.data[idx] = f.Add(a.data[idx], b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Grid.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n²).
func Add[T any](a, b *Grid[T]) (*Grid[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Grid.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n²).
func Sub[T any](a, b *Grid[T]) (*Grid[T], error) { return addSub(a, b, true, opSub) }

// Mul performs matrix multiplication C = A × B (no aliasing).
//
// Determinism: fixed i→k→j loop order with row-major strides; zero A[i,k]
// entries are skipped, which is exact for every Field (0·x contributes
// nothing under any rounding).
// Complexity: Time O(n³), Space O(n²).
func Mul[T any](a, b *Grid[T]) (*Grid[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	n := a.n
	res, err := New(a.f, n)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	f := a.f
	var i, j, k int
	var av T
	for i = 0; i < n; i++ {
		rowA := i * n
		rowR := i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if f.IsZero(av) {
				continue // zero row entry contributes nothing
			}
			rowB := k * n
			for j = 0; j < n; j++ {
				res.data[rowR+j] = f.Add(res.data[rowR+j], f.Mul(av, b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Size().
// Determinism: fixed i→j loop order, one pass per row with flat indexing.
// Complexity: Time O(n²), Space O(n) for y.
func MatVec[T any](m *Grid[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	f := m.f
	y := make([]T, m.n)
	var i, j int
	var acc T
	for i = 0; i < m.n; i++ {
		acc = f.Zero()
		base := i * m.n
		for j = 0; j < m.n; j++ {
			if f.IsZero(x[j]) {
				continue
			}
			acc = f.Add(acc, f.Mul(m.data[base+j], x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new Grid with rows and columns swapped (mᵀ).
// The original is never mutated; transpose∘transpose is the exact identity
// because elements are moved, not recomputed.
// Complexity: O(n²).
func Transpose[T any](m *Grid[T]) (*Grid[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res, err := New(m.f, m.n)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		base := i * m.n
		for j = 0; j < m.n; j++ {
			res.data[j*m.n+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Equal reports exact element-wise equality (Cmp == 0 everywhere).
// Intended for structural laws (transpose round-trips), not for comparing
// inexact computations; use ErrorSet for those.
func Equal[T any](a, b *Grid[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if a.n != b.n {
		return false, nil
	}
	f := a.f
	for idx := range a.data {
		if f.Cmp(a.data[idx], b.data[idx]) != 0 {
			return false, nil
		}
	}

	return true, nil
}
