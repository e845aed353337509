// Package solve implements the dense solver kernel: LU decomposition with
// partial pivoting and optional row equilibration, Cholesky decomposition
// for symmetric positive-definite systems, triangular substitution,
// iterative refinement with wide-precision residuals, and the derived
// quantities (determinant, infinity-norm, condition number).
//
// The solve package provides:
//
//   - FactorLU / FactorCholesky: produce a Factorization (state machine
//     Unfactored → InProgress → Factored | Singular) from an internal
//     working copy; the caller's Grid is never touched.
//   - Factorization.SolveVector / SolveGrid: permuted forward and backward
//     substitution for vector and matrix right-hand sides; AX=B runs
//     column-by-column against one shared factorization.
//   - Refine / RefineGrid: upgrade a simple solution by computing residuals
//     in a precision wider than the backend's own, solving the correction
//     system against the existing factors and stopping on convergence,
//     stagnation or budget exhaustion. Stagnation is not an error.
//   - Determinant, Norm, Cond and the Solve/Invert facades, in both simple
//     (single decomposition) and Accurate (refined) variants.
//
// Error policy: singularity is an expected outcome, reported as
// ErrSingular by operations that need a unique solution, as a zero
// determinant, and as a +Inf condition number. Misuse (nil grids,
// mismatched dimensions, non-finite right-hand sides) fails fast before
// any decomposition work begins.
//
// Concurrency: every call is synchronous and works on call-local copies,
// so concurrent calls against the same Grid are safe; a Factorization is
// safe for concurrent solves once Factored (it is never written after).
// The refinement iteration budget is the only bound on a call's duration.
package solve
