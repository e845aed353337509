// SPDX-License-Identifier: MIT

// Package num: the Field contract.
//
// Purpose:
//   - Declare the single arithmetic capability set every solver kernel is
//     written against, so LU/Cholesky/refinement exist once per algorithm
//     and are instantiated per representation.
//   - Keep the contract wide enough for numerics (pivot tolerance, wide
//     residual precision) and narrow enough to implement in ~a screen per
//     backend.
//
// Determinism & Policy:
//   - Implementations are stateless value types (or carry an immutable
//     context); the same inputs always produce the same outputs.
//   - No operation mutates its operands. Representations with pointer
//     semantics (Dec, Quad) allocate fresh results.

package num

import (
	"math"
	"math/big"
)

// Field is the arithmetic contract of a numeric representation T.
//
// The solver kernels consume exactly this set: natural rounding semantics
// are the backend's own (native rounding for Real, context rounding for
// Dec, round-to-nearest-even at pinned precision for Quad).
//
// Error policy: Div reports ErrDivisionByZero and Sqrt reports
// ErrNegativeSqrt instead of silently producing Inf/NaN sentinels. The only
// sanctioned sentinel producer is Inf, used to report an infinite condition
// number as an explicit result state.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T

	// FromFloat64 converts a float64 into T (exact where T can hold it).
	FromFloat64(v float64) T
	// Float64 converts v into the nearest float64.
	Float64(v T) float64

	// Add returns a+b.
	Add(a, b T) T
	// Sub returns a-b.
	Sub(a, b T) T
	// Mul returns a*b.
	Mul(a, b T) T
	// Div returns a/b, or ErrDivisionByZero when b is zero.
	Div(a, b T) (T, error)
	// Neg returns -a.
	Neg(a T) T
	// Abs returns |a|.
	Abs(a T) T
	// Sqrt returns √a, or ErrNegativeSqrt when a < 0.
	Sqrt(a T) (T, error)

	// Cmp compares a and b: -1 if a<b, 0 if a==b, +1 if a>b.
	Cmp(a, b T) int
	// Sign reports -1, 0 or +1 for negative, zero or positive a.
	Sign(a T) int
	// IsZero reports whether a equals zero.
	IsZero(a T) bool
	// IsNaN reports whether a is a NaN form (always false for backends
	// without one).
	IsNaN(a T) bool
	// IsInf reports whether a is a ±Inf form.
	IsInf(a T) bool
	// Inf returns +Inf for sign >= 0 and -Inf otherwise.
	Inf(sign int) T

	// Eps is the representation epsilon: the relative spacing of values
	// around 1. Refinement uses it as the default convergence threshold.
	Eps() T
	// PivotTol is the magnitude below which a pivot counts as negligible
	// (zero for exact-ish representations, the smallest normal for Real).
	PivotTol() T

	// WidePrec is the mantissa size in bits of the wide representation
	// residuals are accumulated in. Strictly wider than T itself.
	WidePrec() uint
	// Big lifts v into a big.Float of the given precision.
	Big(v T, prec uint) *big.Float
	// FromBig narrows a finite big.Float back into T, applying the
	// representation's rounding.
	FromBig(v *big.Float) T

	// Text formats v for diagnostics and test failure messages.
	Text(v T) string
}

// Convert moves a value between two representations through the wide
// big.Float form, rounding once on the way in and once on the way out.
// Used to expose the same internally computed value (e.g., a determinant)
// at several output precisions.
func Convert[S, D any](src Field[S], dst Field[D], v S) D {
	// Route special forms directly; big.Float cannot carry NaN, and Inf
	// survives the round-trip only by explicit construction.
	if src.IsInf(v) {
		return dst.Inf(src.Sign(v))
	}
	if src.IsNaN(v) {
		return dst.FromFloat64(math.NaN())
	}

	// Lift at the wider of the two working precisions so neither side's
	// resolution is the bottleneck.
	prec := src.WidePrec()
	if dp := dst.WidePrec(); dp > prec {
		prec = dp
	}

	return dst.FromBig(src.Big(v, prec))
}
