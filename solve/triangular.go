// SPDX-License-Identifier: MIT

// Package solve: permuted forward and backward substitution.
//
// Implementation:
//   - LU path: replay the recorded row swaps on the right-hand side, run
//     forward substitution through the unit lower factor (multipliers have
//     an implicit 1 on the diagonal), then backward substitution through U
//     dividing by its diagonal.
//   - Cholesky path: forward substitution through L (explicit diagonal),
//     then backward substitution through Lᵗ read column-wise from the same
//     packed storage.
//
// Behavior highlights:
//   - A factorization in StateSingular reports ErrSingular here; any other
//     non-Factored state reports ErrNotFactored. Both fire before any
//     arithmetic.
//   - When the factorization was equilibrated, the right-hand side is
//     scaled by the same row factors, so the returned solution solves the
//     ORIGINAL system with no reverse step.
//   - Matrix right-hand sides are solved column-by-column against the one
//     shared factorization; this is also how Invert obtains A⁻¹ from the
//     identity.
//
// Complexity:
//   - Vector: O(n²). Grid: O(n³) total (n columns, O(n²) each).

package solve

import (
	"github.com/katalvlaran/densolve/dense"
)

// SolveVector solves the factored system for one right-hand side and
// returns a freshly allocated solution vector. The input slice is not
// modified.
func (fa *Factorization[T]) SolveVector(b []T) ([]T, error) {
	if err := fa.usable(opSolveVector); err != nil {
		return nil, err
	}
	if err := dense.ValidateVecLen(b, fa.n); err != nil {
		return nil, err
	}
	if err := fa.validateFinite(opSolveVector, b); err != nil {
		return nil, err
	}

	x := dense.CloneVec(b)
	if err := fa.substitute(x); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveGrid solves AX = B column-by-column and returns X as a new Grid.
func (fa *Factorization[T]) SolveGrid(b *dense.Grid[T]) (*dense.Grid[T], error) {
	if err := fa.usable(opSolveGrid); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(b); err != nil {
		return nil, err
	}
	if b.Size() != fa.n {
		return nil, opErrorf(opSolveGrid, dense.ErrDimensionMismatch)
	}

	n := fa.n
	x, err := dense.New(fa.f, n)
	if err != nil {
		return nil, err
	}
	raw := b.Raw()
	out := x.Raw()
	col := make([]T, n)
	var c, i int
	for c = 0; c < n; c++ {
		for i = 0; i < n; i++ {
			col[i] = raw[i*n+c]
		}
		if subErr := fa.substitute(col); subErr != nil {
			return nil, subErr
		}
		for i = 0; i < n; i++ {
			out[i*n+c] = col[i]
		}
	}

	return x, nil
}

// usable gates solving on the factorization state.
func (fa *Factorization[T]) usable(op string) error {
	switch fa.state {
	case StateFactored:
		return nil
	case StateSingular:
		return opErrorf(op, ErrSingular)
	default:
		return opErrorf(op, ErrNotFactored)
	}
}

// validateFinite rejects NaN/Inf entries in a right-hand side. Grids are
// finite by construction; raw vectors arrive unchecked.
func (fa *Factorization[T]) validateFinite(op string, b []T) error {
	for i := range b {
		if fa.f.IsNaN(b[i]) || fa.f.IsInf(b[i]) {
			return opErrorf(op, dense.ErrNaNInf)
		}
	}

	return nil
}

// substitute runs the full substitution pipeline in place on x: scaling
// (when recorded), permutation replay, forward pass, backward pass.
func (fa *Factorization[T]) substitute(x []T) error {
	if fa.scale != nil {
		scaleRHS(fa.f, x, fa.scale)
	}
	if fa.kind == kindLU {
		fa.permute(x)
		fa.forwardUnit(x)

		return fa.backwardUpper(x)
	}
	if err := fa.forwardLower(x); err != nil {
		return err
	}

	return fa.backwardLowerT(x)
}

// permute replays the recorded row swaps in factorization order.
func (fa *Factorization[T]) permute(x []T) {
	for k := 0; k < fa.n; k++ {
		if p := fa.perm[k]; p != k {
			x[k], x[p] = x[p], x[k]
		}
	}
}

// forwardUnit solves L·y = x for a unit lower triangle (LU multipliers).
func (fa *Factorization[T]) forwardUnit(x []T) {
	f, n := fa.f, fa.n
	var i, j int
	for i = 1; i < n; i++ {
		base := i * n
		for j = 0; j < i; j++ {
			if f.IsZero(fa.packed[base+j]) {
				continue
			}
			x[i] = f.Sub(x[i], f.Mul(fa.packed[base+j], x[j]))
		}
	}
}

// backwardUpper solves U·x = y dividing by the U diagonal.
func (fa *Factorization[T]) backwardUpper(x []T) error {
	f, n := fa.f, fa.n
	var i, j int
	for i = n - 1; i >= 0; i-- {
		base := i * n
		for j = i + 1; j < n; j++ {
			x[i] = f.Sub(x[i], f.Mul(fa.packed[base+j], x[j]))
		}
		q, err := f.Div(x[i], fa.packed[base+i])
		if err != nil {
			// Unreachable for a Factored LU; kept as belt against misuse.
			return opErrorf(opSolveVector, ErrSingular)
		}
		x[i] = q
	}

	return nil
}

// forwardLower solves L·y = x with an explicit positive diagonal (Cholesky).
func (fa *Factorization[T]) forwardLower(x []T) error {
	f, n := fa.f, fa.n
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < i; j++ {
			x[i] = f.Sub(x[i], f.Mul(fa.packed[base+j], x[j]))
		}
		q, err := f.Div(x[i], fa.packed[base+i])
		if err != nil {
			return opErrorf(opSolveVector, ErrNotPositiveDefinite)
		}
		x[i] = q
	}

	return nil
}

// backwardLowerT solves Lᵗ·x = y reading L column-wise.
func (fa *Factorization[T]) backwardLowerT(x []T) error {
	f, n := fa.f, fa.n
	var i, j int
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			x[i] = f.Sub(x[i], f.Mul(fa.packed[j*n+i], x[j]))
		}
		q, err := f.Div(x[i], fa.packed[i*n+i])
		if err != nil {
			return opErrorf(opSolveVector, ErrNotPositiveDefinite)
		}
		x[i] = q
	}

	return nil
}
