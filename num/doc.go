// Package num defines the arithmetic contract the solver kernels are written
// against, and its three instantiations.
//
// The num package provides:
//
//   - Field[T]: the full capability set a decomposition needs (add, subtract,
//     multiply, divide, negate, absolute value, comparison, zero/one,
//     NaN/Inf tests, square root, and conversions to and from float64 and
//     wide big.Float values).
//   - Real[F]: native floating point over any constraints.Float type;
//     Real64() is the common instantiation.
//   - Dec: arbitrary-precision decimal arithmetic with an explicit
//     precision and rounding context (cockroachdb/apd).
//   - Quad: extended-precision binary floating point (~36 decimal digits)
//     backed by big.Float at a pinned mantissa size.
//
// All operations are pure: arguments are never mutated and results are
// freshly allocated where the representation requires allocation. Division
// by zero and square roots of negative values are reported as errors, never
// as silently propagated sentinels; the ±Inf sentinel is produced only via
// the explicit Inf constructor (used by condition-number reporting).
//
// Instantiate one Field per call site and thread it through dense and solve;
// the kernels stay monomorphic per representation.
package num
