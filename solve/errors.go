// SPDX-License-Identifier: MIT
// Package solve: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the solve
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package solve

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "solve: ..." for consistency and to allow
// easy grepping across logs. Structural violations (nil grid, dimension
// mismatch, NaN/Inf in a right-hand side) reuse the dense package
// sentinels, so errors.Is(err, dense.ErrDimensionMismatch) works across the
// facade boundary.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape/NaN (dense sentinels) -> not factored -> singular ->
// not positive definite.

var (
	// ErrSingular reports that elimination met a zero (or negligible)
	// pivot: the system has no unique solution. Expected and common, so it
	// surfaces only from operations that require a unique solution;
	// determinant reports zero and the condition number reports +Inf for
	// the same matrix without an error.
	ErrSingular = errors.New("solve: singular matrix")

	// ErrNotPositiveDefinite reports that Cholesky met a non-positive
	// value under the square root. Distinct from ErrSingular: the SPD
	// entry points fail explicitly rather than silently falling back to LU.
	ErrNotPositiveDefinite = errors.New("solve: matrix is not positive definite")

	// ErrNotFactored reports use of a Factorization whose state is not
	// Factored (e.g., solving through a factorization that detected
	// singularity).
	ErrNotFactored = errors.New("solve: factorization is not in the Factored state")
)

// Operation names used in wrapped error messages. Keeping them as constants
// makes messages grep-stable and avoids typos across call sites.
const (
	opFactorLU       = "FactorLU"
	opFactorCholesky = "FactorCholesky"
	opSolveVector    = "SolveVector"
	opSolveGrid      = "SolveGrid"
	opRefine         = "Refine"
	opRefineGrid     = "RefineGrid"
	opSolve          = "Solve"
	opSolveSPD       = "SolveSPD"
	opInvert         = "Invert"
	opDeterminant    = "Determinant"
	opNorm           = "Norm"
	opCond           = "Cond"
)

// opErrorf wraps a sentinel with the operation tag:
// "solve.<op>: <sentinel>". errors.Is against the sentinel still matches.
func opErrorf(op string, err error) error {
	return fmt.Errorf("solve.%s: %w", op, err)
}
