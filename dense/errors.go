// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> index -> NaN/Inf -> dimension mismatch.

var (
	// ErrNilMatrix indicates that a nil *Grid (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (n <= 0) or
	// when constructor input rows are ragged or non-square.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. a right-hand side whose length disagrees with the
	// matrix size. Detected before any decomposition work begins.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf element where finite values are
	// required. Ingestion (FromRows/FromFloats/Set) rejects such elements
	// so the kernels never have to launder them mid-elimination.
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")
)
