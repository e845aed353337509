// SPDX-License-Identifier: MIT

// Package num: native floating-point backend.
//
// Real is generic over constraints.Float so float32 kernels remain possible,
// but Real64 is the instantiation the rest of the library exercises. All
// operations are single hardware instructions plus the error checks the
// Field contract demands.

package num

import (
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
)

// realWidePrec is the residual precision of the native backends: roughly
// double a float64 mantissa, so refinement can see error the working
// precision cannot.
const realWidePrec = 120

// Real implements Field over a native floating-point type.
// The zero value is ready to use; Real64 names the common case.
type Real[F constraints.Float] struct{}

// Real64 returns the float64 instantiation of Real.
func Real64() Real[float64] { return Real[float64]{} }

// Zero returns 0.
func (Real[F]) Zero() F { return 0 }

// One returns 1.
func (Real[F]) One() F { return 1 }

// FromFloat64 converts v into F (a rounding step for float32).
func (Real[F]) FromFloat64(v float64) F { return F(v) }

// Float64 widens v into a float64 (exact for float32 and float64).
func (Real[F]) Float64(v F) float64 { return float64(v) }

// Add returns a+b with native rounding.
func (Real[F]) Add(a, b F) F { return a + b }

// Sub returns a-b with native rounding.
func (Real[F]) Sub(a, b F) F { return a - b }

// Mul returns a*b with native rounding.
func (Real[F]) Mul(a, b F) F { return a * b }

// Div returns a/b, or ErrDivisionByZero when b == 0. The IEEE ±Inf result
// of x/0 is deliberately not produced; pivot checks happen before division.
func (Real[F]) Div(a, b F) (F, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Neg returns -a.
func (Real[F]) Neg(a F) F { return -a }

// Abs returns |a|.
func (Real[F]) Abs(a F) F {
	if a < 0 {
		return -a
	}

	return a
}

// Sqrt returns √a, or ErrNegativeSqrt for a < 0.
func (Real[F]) Sqrt(a F) (F, error) {
	if a < 0 {
		return 0, ErrNegativeSqrt
	}

	return F(math.Sqrt(float64(a))), nil
}

// Cmp compares a and b (-1, 0, +1).
func (Real[F]) Cmp(a, b F) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sign reports the algebraic sign of a.
func (r Real[F]) Sign(a F) int { return r.Cmp(a, 0) }

// IsZero reports whether a == 0 (matches -0 as well).
func (Real[F]) IsZero(a F) bool { return a == 0 }

// IsNaN reports whether a is IEEE NaN.
func (Real[F]) IsNaN(a F) bool { return math.IsNaN(float64(a)) }

// IsInf reports whether a is ±Inf.
func (Real[F]) IsInf(a F) bool { return math.IsInf(float64(a), 0) }

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func (Real[F]) Inf(sign int) F {
	if sign < 0 {
		return F(math.Inf(-1))
	}

	return F(math.Inf(1))
}

// Eps returns the relative spacing around 1 for F.
func (Real[F]) Eps() F {
	if is32[F]() {
		return F(1.1920928955078125e-07) // 2^-23, float32
	}

	return F(2.220446049250313e-16) // 2^-52, float64
}

// PivotTol returns the smallest positive normal value of F: anything at or
// below it cannot anchor a stable elimination step.
func (Real[F]) PivotTol() F {
	if is32[F]() {
		return F(math.SmallestNonzeroFloat32 * (1 << 23))
	}

	return F(2.2250738585072014e-308) // math.SmallestNonzeroFloat64 * 2^52
}

// WidePrec returns the residual accumulation precision in bits.
func (Real[F]) WidePrec() uint { return realWidePrec }

// Big lifts v into a big.Float of the given precision (exact).
func (Real[F]) Big(v F, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(float64(v))
}

// FromBig rounds a finite big.Float to the nearest F.
func (Real[F]) FromBig(v *big.Float) F {
	f, _ := v.Float64()

	return F(f)
}

// Text formats v in the shortest round-trippable decimal form.
func (Real[F]) Text(v F) string {
	bits := 64
	if is32[F]() {
		bits = 32
	}

	return strconv.FormatFloat(float64(v), 'g', -1, bits)
}

// is32 reports whether F is float32, told apart by mantissa behavior:
// float32 cannot represent 1 + 2^-30 distinctly from 1.
func is32[F constraints.Float]() bool {
	return F(1)+F(9.313225746154785e-10) == F(1)
}
