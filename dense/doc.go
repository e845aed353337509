// Package dense provides the square, row-major containers the solver
// kernels consume, generic over any num.Field representation.
//
// The dense package provides:
//
//   - Grid[T]: an immutable-by-convention square matrix with flat row-major
//     storage; constructors validate shape and reject NaN/Inf elements at
//     the boundary.
//   - Elementwise and structural operations (Add, Sub, Mul, MatVec,
//     Transpose, Identity, Equal) written once over the Field contract.
//   - ErrorSet: mean-squared / mean / max error statistics between an
//     expected and an actual value slice, used to grade refinement quality.
//
// Grids are best treated as values: the solve package never mutates a
// caller's Grid, and operations here always allocate a fresh result.
package dense
