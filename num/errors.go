// SPDX-License-Identifier: MIT
// Package num: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the num
// package. All backends MUST return these sentinels and tests MUST check them
// via errors.Is. No backend should panic on user-triggered error conditions.

package num

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "num: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDivisionByZero is returned by Field.Div when the divisor is zero.
	// Backends never answer a zero divisor with an Inf/NaN sentinel; the
	// caller decides whether a zero divisor means "singular" or "bug".
	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrNegativeSqrt is returned by Field.Sqrt for negative operands,
	// the signal Cholesky uses to detect non-positive-definite input.
	ErrNegativeSqrt = errors.New("num: square root of negative value")

	// ErrNotRepresentable indicates a value could not be converted into the
	// target representation (e.g., narrowing a non-finite wide value into a
	// backend that lacks that form).
	ErrNotRepresentable = errors.New("num: value not representable")
)
