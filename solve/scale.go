// SPDX-License-Identifier: MIT

// Package solve: row equilibration.
//
// Purpose:
//   - Equalize row magnitudes before LU decomposition so partial pivoting
//     compares likes with likes on badly scaled systems.
//
// Invariant (the one the tests pin down): multiplying row i of A and b_i by
// the same factor s_i leaves the solution x of Ax=b unchanged, so no
// reverse step is applied to solutions. Quantities that refer to the
// original matrix — the determinant and the norm — are reported unscaled:
// the determinant divides out the scale product recorded on the
// factorization, and the norm always reads the original Grid.

package solve

import "github.com/katalvlaran/densolve/num"

// computeScale returns per-row factors s_i = 1/max|row i|, or 1 for an
// all-zero row (such a row makes the matrix singular regardless; a neutral
// factor keeps the arithmetic finite until the pivot search reports it).
// Pure: reads only. Complexity: O(n²).
func computeScale[T any](f num.Field[T], data []T, n int) []T {
	scale := make([]T, n)
	one := f.One()
	var i, j int
	var biggest, mag T
	for i = 0; i < n; i++ {
		biggest = f.Zero()
		base := i * n
		for j = 0; j < n; j++ {
			mag = f.Abs(data[base+j])
			if f.Cmp(mag, biggest) > 0 {
				biggest = mag
			}
		}
		if f.IsZero(biggest) {
			scale[i] = one
			continue
		}
		// biggest > 0, so the division cannot fail.
		s, err := f.Div(one, biggest)
		if err != nil {
			s = one
		}
		scale[i] = s
	}

	return scale
}

// applyScale multiplies each row of data (row-major n×n) by its factor,
// in place. data is always a call-local working copy, never caller storage.
// Complexity: O(n²).
func applyScale[T any](f num.Field[T], data []T, n int, scale []T) {
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			data[base+j] = f.Mul(data[base+j], scale[i])
		}
	}
}

// scaleRHS multiplies b_i by s_i, in place on a call-local copy, keeping
// the Ax=b invariant with a row-scaled factorization. Complexity: O(n).
func scaleRHS[T any](f num.Field[T], b []T, scale []T) {
	for i := range b {
		b[i] = f.Mul(b[i], scale[i])
	}
}
