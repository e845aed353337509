// SPDX-License-Identifier: MIT

// Package num: extended-precision backend.
//
// Quad pins every big.Float it produces to one mantissa size (120 bits by
// default, ~36 decimal digits) with round-to-nearest-even, so the backend
// behaves like a fixed-width floating-point type rather than the elastic
// precision big.Float otherwise exhibits. big.Float has no NaN form; the
// operations that would produce one are fenced by explicit errors instead.

package num

import (
	"math"
	"math/big"
)

// Quad implements Field over *big.Float at a pinned precision.
// Construct via NewQuad; the zero value would pin precision 0.
type Quad struct {
	prec uint
}

// NewQuad returns the extended-precision backend. The mantissa size is
// DefaultQuadPrec bits unless overridden with WithQuadPrec.
func NewQuad(opts ...Option) Quad {
	o := gatherOptions(opts...)

	return Quad{prec: o.quadPrec}
}

// Prec reports the pinned mantissa size in bits.
func (q Quad) Prec() uint { return q.prec }

// new returns a fresh accumulator at the pinned precision.
func (q Quad) new() *big.Float { return new(big.Float).SetPrec(q.prec) }

// Zero returns 0.
func (q Quad) Zero() *big.Float { return q.new() }

// One returns 1.
func (q Quad) One() *big.Float { return q.new().SetInt64(1) }

// FromFloat64 converts v exactly (float64 always fits the mantissa).
// NaN has no big.Float form and maps to +Inf so that ingestion validators
// still reject it as non-finite instead of SetFloat64 panicking.
func (q Quad) FromFloat64(v float64) *big.Float {
	if math.IsNaN(v) {
		return q.Inf(1)
	}

	return q.new().SetFloat64(v)
}

// Float64 rounds v to the nearest float64.
func (q Quad) Float64(v *big.Float) float64 {
	f, _ := v.Float64()

	return f
}

// Add returns a+b rounded to the pinned precision.
func (q Quad) Add(a, b *big.Float) *big.Float { return q.new().Add(a, b) }

// Sub returns a-b rounded to the pinned precision.
func (q Quad) Sub(a, b *big.Float) *big.Float { return q.new().Sub(a, b) }

// Mul returns a*b rounded to the pinned precision.
func (q Quad) Mul(a, b *big.Float) *big.Float { return q.new().Mul(a, b) }

// Div returns a/b, or ErrDivisionByZero when b is zero (big.Float would
// otherwise panic on 0/0 and produce ±Inf on x/0).
func (q Quad) Div(a, b *big.Float) (*big.Float, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return q.new().Quo(a, b), nil
}

// Neg returns -a.
func (q Quad) Neg(a *big.Float) *big.Float { return q.new().Neg(a) }

// Abs returns |a|.
func (q Quad) Abs(a *big.Float) *big.Float { return q.new().Abs(a) }

// Sqrt returns √a, or ErrNegativeSqrt for a < 0 (big.Float would panic).
func (q Quad) Sqrt(a *big.Float) (*big.Float, error) {
	if a.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}

	return q.new().Sqrt(a), nil
}

// Cmp compares a and b (-1, 0, +1).
func (Quad) Cmp(a, b *big.Float) int { return a.Cmp(b) }

// Sign reports the algebraic sign of a.
func (Quad) Sign(a *big.Float) int { return a.Sign() }

// IsZero reports whether a is zero.
func (Quad) IsZero(a *big.Float) bool { return a.Sign() == 0 }

// IsNaN always reports false: big.Float has no NaN form and the operations
// that would create one return errors instead.
func (Quad) IsNaN(*big.Float) bool { return false }

// IsInf reports whether a is ±Inf.
func (Quad) IsInf(a *big.Float) bool { return a.IsInf() }

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func (q Quad) Inf(sign int) *big.Float { return q.new().SetInf(sign < 0) }

// Eps returns 2^(1-prec), the relative spacing around 1.
func (q Quad) Eps() *big.Float {
	return q.new().SetMantExp(q.One(), 1-int(q.prec))
}

// PivotTol returns zero: big.Float exponents do not underflow the way
// native floats do, so only an exact zero pivot is degenerate.
func (q Quad) PivotTol() *big.Float { return q.new() }

// WidePrec returns double the working precision for residual accumulation.
func (q Quad) WidePrec() uint { return 2 * q.prec }

// Big lifts v into a big.Float of the given precision.
func (Quad) Big(v *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(v)
}

// FromBig rounds v to the pinned precision.
func (q Quad) FromBig(v *big.Float) *big.Float { return q.new().Set(v) }

// Text formats v with a full-precision decimal mantissa.
func (q Quad) Text(v *big.Float) string { return v.Text('g', int(q.prec/3)) }
