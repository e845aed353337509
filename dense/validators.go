// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finiteness checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Finiteness checks run O(n²) over the stored elements only when asked.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Grid is square by construction, so shape validators here are about
//    operand compatibility, not squareness.

package dense

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the grid reference is non-nil.
//
// Returns ErrNilMatrix if g == nil. Complexity: O(1).
// Use as the first step in composite validations.
func ValidateNotNil[T any](g *Grid[T]) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures grids a and b have equal dimension.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameSize[T any](a, b *Grid[T]) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs in solve-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects NaN/Inf elements in a right-hand-side vector.
// Grid ingestion already enforces this for matrices; vectors arrive raw.
// Time: O(n).
func ValidateFiniteVec[T any](g *Grid[T], x []T) error {
	f := g.Field()
	for i := range x {
		if f.IsNaN(x[i]) || f.IsInf(x[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
