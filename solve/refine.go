// SPDX-License-Identifier: MIT

// Package solve: iterative refinement with wide-precision residuals.
//
// Implementation:
//   - Lift A and b once into big.Float at the backend's WidePrec (at least
//     twice the working precision), then per iteration:
//       1. lift the current x and accumulate r = b - A·x entirely wide,
//       2. narrow r back to the working precision,
//       3. solve A·δ = r through the EXISTING factorization (no second
//          decomposition; scaling replays on the residual automatically),
//       4. update x ← x + δ.
//   - The wide accumulation is the whole point: at working precision the
//     residual of a good solution cancels to noise, so corrections computed
//     from it cannot converge.
//
// Stopping rules, in test order:
//   - Convergence: ‖δ‖∞ <= tol·‖x‖∞ (tol of zero means backend epsilon).
//   - Stagnation: the correction stopped halving (2·‖δ‖∞ > previous ‖δ‖∞),
//     meaning the attainable accuracy for this conditioning is reached.
//     Stagnation is a normal exit, never an error.
//   - Budget: WithMaxIterations corrections applied.
//
// Complexity:
//   - O(iters·n²) on top of the factorization, with big.Float constants.

package solve

import (
	"math/big"

	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/num"
)

// Refine improves an initial solution x0 of A·x = b by wide-residual
// correction against an existing factorization of A. Returns a new slice;
// neither x0 nor b is modified. A and b must be the ORIGINAL (unscaled)
// system, exactly as passed to FactorLU or FactorCholesky.
func Refine[T any](fa *Factorization[T], m *dense.Grid[T], b, x0 []T, opts ...Option) ([]T, error) {
	if err := fa.usable(opRefine); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Size() != fa.n {
		return nil, opErrorf(opRefine, dense.ErrDimensionMismatch)
	}
	if err := dense.ValidateVecLen(b, fa.n); err != nil {
		return nil, err
	}
	if err := dense.ValidateVecLen(x0, fa.n); err != nil {
		return nil, err
	}
	if err := fa.validateFinite(opRefine, b); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	w := newWideSystem(fa.f, m.Raw(), b, fa.n)
	x := dense.CloneVec(x0)
	if err := refineLoop(fa, w, x, o); err != nil {
		return nil, err
	}

	return x, nil
}

// RefineGrid refines a matrix solution X0 of A·X = B column-by-column
// against one shared factorization and one shared wide lift of A.
func RefineGrid[T any](fa *Factorization[T], m, b, x0 *dense.Grid[T], opts ...Option) (*dense.Grid[T], error) {
	if err := fa.usable(opRefineGrid); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(b); err != nil {
		return nil, err
	}
	if err := dense.ValidateNotNil(x0); err != nil {
		return nil, err
	}
	if m.Size() != fa.n || b.Size() != fa.n || x0.Size() != fa.n {
		return nil, opErrorf(opRefineGrid, dense.ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	f, n := fa.f, fa.n
	out := x0.Clone()
	rawB, rawX := b.Raw(), out.Raw()
	col := make([]T, n)
	bCol := make([]T, n)
	for k := 0; k < n; k++ {
		bCol[k] = f.Zero() // placeholder until the first column loads
	}

	w := newWideSystem(f, m.Raw(), bCol, n)
	var c, i int
	for c = 0; c < n; c++ {
		for i = 0; i < n; i++ {
			bCol[i] = rawB[i*n+c]
			col[i] = rawX[i*n+c]
		}
		w.resetRHS(f, bCol)
		if err := refineLoop(fa, w, col, o); err != nil {
			return nil, err
		}
		for i = 0; i < n; i++ {
			rawX[i*n+c] = col[i]
		}
	}

	return out, nil
}

// wideSystem caches the big.Float lift of A and b plus iteration scratch,
// so the per-iteration cost is the residual accumulation only.
type wideSystem[T any] struct {
	prec uint
	n    int
	a    []*big.Float // row-major lift of A
	b    []*big.Float // lift of the right-hand side
	r    []*big.Float // residual scratch
	acc  *big.Float   // product scratch
}

func newWideSystem[T any](f num.Field[T], a, b []T, n int) *wideSystem[T] {
	prec := f.WidePrec()
	w := &wideSystem[T]{
		prec: prec,
		n:    n,
		a:    make([]*big.Float, n*n),
		b:    make([]*big.Float, n),
		r:    make([]*big.Float, n),
		acc:  new(big.Float).SetPrec(prec),
	}
	for i := range a {
		w.a[i] = f.Big(a[i], prec)
	}
	w.resetRHS(f, b)
	for i := 0; i < n; i++ {
		w.r[i] = new(big.Float).SetPrec(prec)
	}

	return w
}

// resetRHS re-lifts the right-hand side; used by RefineGrid between columns.
func (w *wideSystem[T]) resetRHS(f num.Field[T], b []T) {
	for i := 0; i < w.n; i++ {
		w.b[i] = f.Big(b[i], w.prec)
	}
}

// residual narrows r = b - A·x into dst, accumulating wide.
func (w *wideSystem[T]) residual(f num.Field[T], x, dst []T) {
	n := w.n
	var i, j int
	for i = 0; i < n; i++ {
		w.r[i].Set(w.b[i])
		base := i * n
		for j = 0; j < n; j++ {
			w.acc.Mul(w.a[base+j], f.Big(x[j], w.prec))
			w.r[i].Sub(w.r[i], w.acc)
		}
		dst[i] = f.FromBig(w.r[i])
	}
}

// refineLoop applies corrections to x in place until convergence,
// stagnation or budget exhaustion.
func refineLoop[T any](fa *Factorization[T], w *wideSystem[T], x []T, o Options) error {
	f, n := fa.f, fa.n
	tol := f.Eps()
	if o.tolerance > 0 {
		tol = f.FromFloat64(o.tolerance)
	}

	r := make([]T, n)
	prev := f.Zero()
	first := true
	var iter, i int
	for iter = 0; iter < o.maxIterations; iter++ {
		w.residual(f, x, r)
		if err := fa.substitute(r); err != nil {
			return err
		}
		for i = 0; i < n; i++ {
			x[i] = f.Add(x[i], r[i])
		}

		dn := infNormVec(f, r)
		// Converged: the correction is negligible relative to the solution.
		if f.Cmp(dn, f.Mul(tol, infNormVec(f, x))) <= 0 {
			return nil
		}
		// Stagnated: corrections stopped halving, further passes only churn.
		if !first && f.Cmp(f.Add(dn, dn), prev) > 0 {
			return nil
		}
		prev = dn
		first = false
	}

	return nil
}
