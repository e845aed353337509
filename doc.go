// Package densolve is a dense linear-algebra engine for square systems:
// one solver contract with interchangeable numeric backends, from fast
// native floats to arbitrary-precision decimals.
//
// 🚀 What is densolve?
//
//	A deterministic, synchronous solver kernel that brings together:
//		• Numeric backends: native float64, ~36-digit extended floats, arbitrary-precision decimals
//		• LU decomposition with partial pivoting and optional row equilibration
//		• Cholesky decomposition for symmetric positive-definite systems
//		• Forward/backward triangular substitution for vector and matrix right-hand sides
//		• Iterative refinement: residuals in wide precision, corrections for (almost) free
//		• Determinant, infinity-norm and condition-number estimation
//
// ✨ Why choose densolve?
//
//   - One contract, three precisions – write the algorithm once, pick the arithmetic per call site
//   - Honest numerics – singularity is a result state, not a panic; refinement reports its best estimate
//   - Callers keep their data – every operation works on an internal copy, inputs are never spoiled
//   - Pure Go – no cgo, no BLAS binding, fully reproducible loops
//
// Under the hood, everything is organized under three subpackages:
//
//	num/   — the Field arithmetic contract and its three instantiations
//	dense/ — square row-major grids, elementwise operations, error statistics
//	solve/ — LU & Cholesky engines, triangular solver, refinement, det/norm/cond
//
// Quick sketch:
//
//	f := num.Real64()
//	a, _ := dense.FromFloats(f, [][]float64{{4, 2}, {2, 3}})
//	x, _ := solve.SolveAccurate(a, []float64{10, 8})
//
// Simple operations run one decomposition; Accurate variants refine the
// solution with wide-precision residuals until it stops improving.
// Dive into each package's doc.go for contracts, tolerances and guarantees.
package densolve
