// SPDX-License-Identifier: MIT

// Package solve: public facades.
//
// This file is the front door of the package: one-call entry points that
// chain validation → decomposition → substitution (→ refinement for the
// Accurate variants) and return plain values. Each facade validates shape
// and finiteness BEFORE factoring, so misuse fails in O(n) instead of
// after an O(n³) decomposition.
//
// Variants:
//   - Solve / SolveGrid / SolveSPD / Invert: single decomposition, working
//     precision throughout. Fast, and accurate enough when the matrix is
//     well conditioned.
//   - SolveAccurate / SolveGridAccurate / SolveSPDAccurate /
//     InvertAccurate: same pipeline plus wide-residual iterative
//     refinement. The decomposition is shared between the initial solve
//     and every correction.
//
// All facades respect WithScaling; the Accurate ones also respect
// WithMaxIterations and WithTolerance.

package solve

import (
	"github.com/katalvlaran/densolve/dense"
)

// Solve computes x with A·x = b via LU with partial pivoting.
// Returns ErrSingular (wrapped) when A has no unique solution.
func Solve[T any](m *dense.Grid[T], b []T, opts ...Option) ([]T, error) {
	fa, err := factorForVec(m, b, opSolve, opts...)
	if err != nil {
		return nil, err
	}

	return fa.SolveVector(b)
}

// SolveAccurate computes x with A·x = b via LU, then polishes the solution
// with wide-residual iterative refinement.
func SolveAccurate[T any](m *dense.Grid[T], b []T, opts ...Option) ([]T, error) {
	fa, err := factorForVec(m, b, opSolve, opts...)
	if err != nil {
		return nil, err
	}
	x, err := fa.SolveVector(b)
	if err != nil {
		return nil, err
	}

	return Refine(fa, m, b, x, opts...)
}

// SolveGrid computes X with A·X = B column-by-column over one LU
// decomposition of A.
func SolveGrid[T any](m, b *dense.Grid[T], opts ...Option) (*dense.Grid[T], error) {
	fa, err := factorForGrid(m, b, opSolveGrid, opts...)
	if err != nil {
		return nil, err
	}

	return fa.SolveGrid(b)
}

// SolveGridAccurate computes X with A·X = B and refines every column.
func SolveGridAccurate[T any](m, b *dense.Grid[T], opts ...Option) (*dense.Grid[T], error) {
	fa, err := factorForGrid(m, b, opSolveGrid, opts...)
	if err != nil {
		return nil, err
	}
	x, err := fa.SolveGrid(b)
	if err != nil {
		return nil, err
	}

	return RefineGrid(fa, m, b, x, opts...)
}

// SolveSPD computes x with A·x = b via Cholesky. A must be symmetric
// positive definite; otherwise ErrNotPositiveDefinite is returned.
func SolveSPD[T any](m *dense.Grid[T], b []T, opts ...Option) ([]T, error) {
	fa, err := factorSPDForVec(m, b, opts...)
	if err != nil {
		return nil, err
	}

	return fa.SolveVector(b)
}

// SolveSPDAccurate computes x with A·x = b via Cholesky plus refinement.
func SolveSPDAccurate[T any](m *dense.Grid[T], b []T, opts ...Option) ([]T, error) {
	fa, err := factorSPDForVec(m, b, opts...)
	if err != nil {
		return nil, err
	}
	x, err := fa.SolveVector(b)
	if err != nil {
		return nil, err
	}

	return Refine(fa, m, b, x, opts...)
}

// Invert returns A⁻¹ by solving A·X = I over one LU decomposition.
// Returns ErrSingular (wrapped) when A is not invertible.
func Invert[T any](m *dense.Grid[T], opts ...Option) (*dense.Grid[T], error) {
	ident, fa, err := factorForInvert(m, opts...)
	if err != nil {
		return nil, err
	}

	return fa.SolveGrid(ident)
}

// InvertAccurate returns A⁻¹ with every column of the inverse refined.
func InvertAccurate[T any](m *dense.Grid[T], opts ...Option) (*dense.Grid[T], error) {
	ident, fa, err := factorForInvert(m, opts...)
	if err != nil {
		return nil, err
	}
	x, err := fa.SolveGrid(ident)
	if err != nil {
		return nil, err
	}

	return RefineGrid(fa, m, ident, x, opts...)
}

// factorForVec runs the shared validate-then-factor prologue of the vector
// facades. Shape and finiteness fail before any elimination work.
func factorForVec[T any](m *dense.Grid[T], b []T, op string, opts ...Option) (*Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := dense.ValidateVecLen(b, m.Size()); err != nil {
		return nil, err
	}
	if err := dense.ValidateFiniteVec(m, b); err != nil {
		return nil, err
	}
	fa, err := FactorLU(m, opts...)
	if err != nil {
		return nil, err
	}
	if fa.Singular() {
		return nil, opErrorf(op, ErrSingular)
	}

	return fa, nil
}

// factorForGrid is factorForVec for matrix right-hand sides.
func factorForGrid[T any](m, b *dense.Grid[T], op string, opts ...Option) (*Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(b); err != nil {
		return nil, err
	}
	if err := dense.ValidateSameSize(m, b); err != nil {
		return nil, err
	}
	fa, err := FactorLU(m, opts...)
	if err != nil {
		return nil, err
	}
	if fa.Singular() {
		return nil, opErrorf(op, ErrSingular)
	}

	return fa, nil
}

// factorSPDForVec validates and Cholesky-factors for the SPD facades.
func factorSPDForVec[T any](m *dense.Grid[T], b []T, opts ...Option) (*Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opSolveSPD, err)
	}
	if err := dense.ValidateVecLen(b, m.Size()); err != nil {
		return nil, opErrorf(opSolveSPD, err)
	}
	if err := dense.ValidateFiniteVec(m, b); err != nil {
		return nil, opErrorf(opSolveSPD, err)
	}

	return FactorCholesky(m, opts...)
}

// factorForInvert builds the identity and LU-factors m for the inversion
// facades.
func factorForInvert[T any](m *dense.Grid[T], opts ...Option) (*dense.Grid[T], *Factorization[T], error) {
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, nil, err
	}
	fa, err := FactorLU(m, opts...)
	if err != nil {
		return nil, nil, err
	}
	if fa.Singular() {
		return nil, nil, opErrorf(opInvert, ErrSingular)
	}
	ident, err := dense.Identity(m.Field(), m.Size())
	if err != nil {
		return nil, nil, err
	}

	return ident, fa, nil
}
