// Package num_test exercises the Field contract across all three backends:
// machine floats, arbitrary-precision decimals and extended binary floats.
// The same generic contract body runs against every backend so any
// divergence in semantics shows up as a single failing subtest.
package num_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/densolve/num"
	"github.com/stretchr/testify/require"
)

// Compile-time interface compliance for every backend.
var (
	_ num.Field[float64]      = num.Real64()
	_ num.Field[float32]      = num.Real[float32]{}
	_ num.Field[*apd.Decimal] = num.NewDec()
	_ num.Field[*big.Float]   = num.NewQuad()
)

// requireEq asserts exact equality under the backend's own comparison.
func requireEq[T any](t *testing.T, f num.Field[T], want, got T) {
	t.Helper()
	require.Zerof(t, f.Cmp(want, got), "want %s, got %s", f.Text(want), f.Text(got))
}

// fieldContract runs the shared arithmetic contract against one backend.
func fieldContract[T any](t *testing.T, f num.Field[T]) {
	zero, one := f.Zero(), f.One()
	two := f.FromFloat64(2)
	three := f.FromFloat64(3)

	t.Run("Identities", func(t *testing.T) {
		requireEq(t, f, two, f.Add(two, zero))     // a + 0 = a
		requireEq(t, f, two, f.Mul(two, one))      // a * 1 = a
		requireEq(t, f, zero, f.Sub(three, three)) // a - a = 0
		requireEq(t, f, f.FromFloat64(6), f.Mul(two, three))
		requireEq(t, f, f.FromFloat64(5), f.Add(two, three))
		requireEq(t, f, f.FromFloat64(-1), f.Sub(two, three))
	})

	t.Run("Division", func(t *testing.T) {
		q, err := f.Div(f.FromFloat64(6), two)
		require.NoError(t, err)
		requireEq(t, f, three, q)

		_, err = f.Div(one, zero) // division by zero is an error, never a panic
		require.ErrorIs(t, err, num.ErrDivisionByZero)
	})

	t.Run("SignAbsNeg", func(t *testing.T) {
		minusTwo := f.Neg(two)
		require.Equal(t, -1, f.Sign(minusTwo))
		require.Equal(t, 1, f.Sign(two))
		require.Equal(t, 0, f.Sign(zero))
		requireEq(t, f, two, f.Abs(minusTwo))
		require.True(t, f.IsZero(zero))
		require.False(t, f.IsZero(two))
	})

	t.Run("Sqrt", func(t *testing.T) {
		r, err := f.Sqrt(f.FromFloat64(4))
		require.NoError(t, err)
		requireEq(t, f, two, r)

		r, err = f.Sqrt(zero) // sqrt(0) = 0, not an error
		require.NoError(t, err)
		requireEq(t, f, zero, r)

		_, err = f.Sqrt(f.Neg(one))
		require.ErrorIs(t, err, num.ErrNegativeSqrt)
	})

	t.Run("Cmp", func(t *testing.T) {
		require.Equal(t, -1, f.Cmp(two, three))
		require.Equal(t, 1, f.Cmp(three, two))
		require.Equal(t, 0, f.Cmp(two, f.Add(one, one)))
	})

	t.Run("Eps", func(t *testing.T) {
		eps := f.Eps()
		require.Equal(t, 1, f.Sign(eps))          // epsilon is positive
		require.Equal(t, -1, f.Cmp(eps, f.One())) // and below one
		require.Greater(t, f.WidePrec(), uint(0))
	})

	t.Run("WideRoundTrip", func(t *testing.T) {
		// Narrow -> wide -> narrow must be lossless for exactly
		// representable values.
		v := f.FromFloat64(1.5)
		back := f.FromBig(f.Big(v, f.WidePrec()))
		requireEq(t, f, v, back)
	})

	t.Run("InfDetection", func(t *testing.T) {
		require.True(t, f.IsInf(f.Inf(1)))
		require.True(t, f.IsInf(f.Inf(-1)))
		require.False(t, f.IsInf(two))
		require.Equal(t, 1, f.Sign(f.Inf(1)))
		require.Equal(t, -1, f.Sign(f.Inf(-1)))
	})
}

func TestFieldContract_Real64(t *testing.T) { fieldContract[float64](t, num.Real64()) }

func TestFieldContract_Dec(t *testing.T) { fieldContract[*apd.Decimal](t, num.NewDec()) }

func TestFieldContract_Quad(t *testing.T) { fieldContract[*big.Float](t, num.NewQuad()) }

// TestRealEps pins the float64 machine epsilon exactly.
func TestRealEps(t *testing.T) {
	f := num.Real64()
	require.Equal(t, math.Nextafter(1, 2)-1, f.Eps()) // 2^-52
	require.True(t, math.IsNaN(f.FromFloat64(math.NaN())))
	require.True(t, f.IsNaN(math.NaN()))
	require.False(t, f.IsNaN(1.0))
}

// TestDecSpecialForms verifies NaN/Inf mapping through the decimal backend.
func TestDecSpecialForms(t *testing.T) {
	f := num.NewDec()
	require.True(t, f.IsNaN(f.FromFloat64(math.NaN())))
	require.True(t, f.IsInf(f.FromFloat64(math.Inf(1))))
	require.False(t, f.IsNaN(f.One()))
	require.False(t, f.IsInf(f.Zero()))
}

// TestDecPrecision verifies that the decimal backend carries far more
// digits than float64: (1 + 10^-20) - 1 survives at 34 digits.
func TestDecPrecision(t *testing.T) {
	f := num.NewDec()
	tiny := f.Eps() // 10^-33 at the default 34 digits
	sum := f.Add(f.One(), tiny)
	diff := f.Sub(sum, f.One())
	require.Equal(t, 0, f.Cmp(tiny, diff))

	// The same round trip in float64 collapses to zero.
	r := num.Real64()
	lost := r.Sub(r.Add(1, 1e-20), 1)
	require.Zero(t, lost)
}

// TestQuadPrecision verifies the extended backend resolves increments far
// below float64 epsilon.
func TestQuadPrecision(t *testing.T) {
	f := num.NewQuad() // 120 bits, roughly 36 decimal digits
	tiny := f.Eps()
	require.Equal(t, -1, f.Cmp(tiny, f.FromFloat64(math.Nextafter(1, 2)-1)))

	sum := f.Add(f.One(), tiny)
	require.Equal(t, 1, f.Cmp(sum, f.One())) // the increment is not absorbed
}

// TestQuadNoNaN documents that the big.Float backend has no NaN form;
// operations that would produce one return errors instead.
func TestQuadNoNaN(t *testing.T) {
	f := num.NewQuad()
	require.False(t, f.IsNaN(f.Zero()))
	_, err := f.Div(f.Zero(), f.Zero()) // 0/0 must error, not panic
	require.ErrorIs(t, err, num.ErrDivisionByZero)
}

// TestConvert moves values across backends through the wide channel.
func TestConvert(t *testing.T) {
	r := num.Real64()
	d := num.NewDec()
	q := num.NewQuad()

	asDec := num.Convert[float64, *apd.Decimal](r, d, 2.5)
	require.Equal(t, 0, d.Cmp(d.FromFloat64(2.5), asDec))

	asQuad := num.Convert[*apd.Decimal, *big.Float](d, q, asDec)
	require.Equal(t, 0, q.Cmp(q.FromFloat64(2.5), asQuad))

	back := num.Convert[*big.Float, float64](q, r, asQuad)
	require.Equal(t, 2.5, back)
}

// TestOptionPanics pins the constructor guards.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { num.WithDecimalDigits(num.MinDecimalDigits - 1) })
	require.Panics(t, func() { num.WithQuadPrec(num.MinQuadPrec - 1) })
	require.NotPanics(t, func() { num.NewDec(num.WithDecimalDigits(50)) })
	require.NotPanics(t, func() { num.NewQuad(num.WithQuadPrec(256)) })
}

// TestConfiguredPrecision checks that options actually change the backends.
func TestConfiguredPrecision(t *testing.T) {
	d := num.NewDec(num.WithDecimalDigits(50))
	require.Equal(t, uint32(50), d.Digits())

	q := num.NewQuad(num.WithQuadPrec(256))
	require.Equal(t, uint(256), q.Prec())
	require.Equal(t, uint(512), q.WidePrec())
}

// TestOperandsNotMutated guards the value-semantics contract of the
// pointer-backed fields: operations allocate, never write operands.
func TestOperandsNotMutated(t *testing.T) {
	d := num.NewDec()
	a, b := d.FromFloat64(3), d.FromFloat64(4)
	_ = d.Add(a, b)
	_ = d.Mul(a, b)
	_ = d.Neg(a)
	require.Equal(t, 0, d.Cmp(a, d.FromFloat64(3)))
	require.Equal(t, 0, d.Cmp(b, d.FromFloat64(4)))

	q := num.NewQuad()
	x, y := q.FromFloat64(3), q.FromFloat64(4)
	_ = q.Sub(x, y)
	_ = q.Abs(q.Neg(x))
	require.Equal(t, 0, q.Cmp(x, q.FromFloat64(3)))
	require.Equal(t, 0, q.Cmp(y, q.FromFloat64(4)))
}
