// SPDX-License-Identifier: MIT

// Package num: arbitrary-precision decimal backend.
//
// Dec delegates arithmetic to a cockroachdb/apd Context carrying the
// caller-specified precision (decimal digits) and rounding mode: results
// are correctly rounded to the context precision, and no operation mutates
// its operands.

package num

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// decBigDigits is the headroom, in decimal digits, used when shuttling
// values through text between apd and big.Float forms.
const decBigDigits = 4

// Dec implements Field over *apd.Decimal.
// Construct via NewDec; the zero value carries no context.
type Dec struct {
	ctx    *apd.Context
	digits uint32
}

// NewDec returns the decimal backend at DefaultDecimalDigits of working
// precision and DefaultRounding, unless overridden via options.
func NewDec(opts ...Option) Dec {
	o := gatherOptions(opts...)
	ctx := apd.BaseContext.WithPrecision(o.decimalDigits)
	ctx.Rounding = o.rounding

	return Dec{ctx: ctx, digits: o.decimalDigits}
}

// Context exposes the underlying apd context (read-only by convention).
func (d Dec) Context() *apd.Context { return d.ctx }

// Digits reports the working precision in decimal digits.
func (d Dec) Digits() uint32 { return d.digits }

// Zero returns 0.
func (Dec) Zero() *apd.Decimal { return new(apd.Decimal) }

// One returns 1.
func (Dec) One() *apd.Decimal { return apd.New(1, 0) }

// FromFloat64 converts v exactly (shortest decimal that round-trips v).
// NaN and ±Inf map onto the matching decimal forms.
func (d Dec) FromFloat64(v float64) *apd.Decimal {
	switch {
	case math.IsNaN(v):
		return &apd.Decimal{Form: apd.NaN}
	case math.IsInf(v, 0):
		return &apd.Decimal{Form: apd.Infinite, Negative: v < 0}
	}
	out := new(apd.Decimal)
	if _, err := out.SetFloat64(v); err != nil {
		return &apd.Decimal{Form: apd.NaN}
	}

	return out
}

// Float64 rounds v to the nearest float64.
func (d Dec) Float64(v *apd.Decimal) float64 {
	switch v.Form {
	case apd.Infinite:
		if v.Negative {
			return math.Inf(-1)
		}

		return math.Inf(1)
	case apd.Finite:
		f, err := v.Float64()
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}

// Add returns a+b rounded to the context precision.
func (d Dec) Add(a, b *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Add(out, a, b)

	return out
}

// Sub returns a-b rounded to the context precision.
func (d Dec) Sub(a, b *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Sub(out, a, b)

	return out
}

// Mul returns a*b rounded to the context precision.
func (d Dec) Mul(a, b *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Mul(out, a, b)

	return out
}

// Div returns a/b, or ErrDivisionByZero when b is zero.
func (d Dec) Div(a, b *apd.Decimal) (*apd.Decimal, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	out := new(apd.Decimal)
	if _, err := d.ctx.Quo(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// Neg returns -a.
func (d Dec) Neg(a *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Neg(out, a)

	return out
}

// Abs returns |a|.
func (d Dec) Abs(a *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Abs(out, a)

	return out
}

// Sqrt returns √a, or ErrNegativeSqrt for a < 0.
func (d Dec) Sqrt(a *apd.Decimal) (*apd.Decimal, error) {
	if a.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}
	out := new(apd.Decimal)
	if _, err := d.ctx.Sqrt(out, a); err != nil {
		return nil, err
	}

	return out, nil
}

// Cmp compares a and b (-1, 0, +1).
func (Dec) Cmp(a, b *apd.Decimal) int { return a.Cmp(b) }

// Sign reports the algebraic sign of a.
func (Dec) Sign(a *apd.Decimal) int { return a.Sign() }

// IsZero reports whether a is zero.
func (Dec) IsZero(a *apd.Decimal) bool { return a.IsZero() }

// IsNaN reports whether a carries a NaN form.
func (Dec) IsNaN(a *apd.Decimal) bool {
	return a.Form == apd.NaN || a.Form == apd.NaNSignaling
}

// IsInf reports whether a is ±Inf.
func (Dec) IsInf(a *apd.Decimal) bool { return a.Form == apd.Infinite }

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func (Dec) Inf(sign int) *apd.Decimal {
	return &apd.Decimal{Form: apd.Infinite, Negative: sign < 0}
}

// Eps returns 10^(1-digits), the relative spacing around 1.
func (d Dec) Eps() *apd.Decimal {
	return apd.New(1, 1-int32(d.digits))
}

// PivotTol returns zero: decimal exponents are wide enough that only an
// exact zero pivot is degenerate.
func (Dec) PivotTol() *apd.Decimal { return new(apd.Decimal) }

// WidePrec returns roughly twice the context precision, expressed in bits
// (each decimal digit carries ~3.33 bits).
func (d Dec) WidePrec() uint { return uint(2*d.digits*10/3 + 8) }

// Big lifts a finite v into a big.Float of the given precision.
func (d Dec) Big(v *apd.Decimal, prec uint) *big.Float {
	out, _, err := big.ParseFloat(v.Text('e'), 10, prec, big.ToNearestEven)
	if err != nil {
		return new(big.Float).SetPrec(prec)
	}

	return out
}

// FromBig narrows a big.Float back into the context precision.
func (d Dec) FromBig(v *big.Float) *apd.Decimal {
	if v.IsInf() {
		return d.Inf(v.Sign())
	}
	out := new(apd.Decimal)
	if _, _, err := d.ctx.SetString(out, v.Text('e', int(d.digits)+decBigDigits)); err != nil {
		return &apd.Decimal{Form: apd.NaN}
	}
	_, _ = d.ctx.Round(out, out)

	return out
}

// Text formats v compactly for diagnostics.
func (Dec) Text(v *apd.Decimal) string { return v.Text('g') }
