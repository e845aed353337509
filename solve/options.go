// SPDX-License-Identifier: MIT

// Package solve: functional configuration for decomposition and refinement
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package solve

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultScaling controls row equilibration before LU decomposition.
	// false ⇒ factor the matrix as given. Scaling is opt-in: it pays off
	// on badly row-scaled systems and is a no-op on well-scaled ones, and
	// either way the reported solution, determinant and norm refer to the
	// original, unscaled system.
	DefaultScaling = false

	// DefaultMaxIterations bounds the refinement loop. Twelve corrections
	// are enough for every backend to reach its representable limit on
	// well-conditioned systems; stagnation detection usually stops the
	// loop earlier.
	DefaultMaxIterations = 12

	// DefaultTolerance of 0 means "use the backend's own epsilon" as the
	// relative convergence threshold for ‖δ‖∞ against ‖x‖∞.
	DefaultTolerance = 0.0
)

// Internal panic messages (no magic strings).
const (
	panicMaxIterationsInvalid = "solve: WithMaxIterations: iterations must be > 0"
	panicToleranceInvalid     = "solve: WithTolerance: tolerance must be finite and >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	scaling       bool    // DefaultScaling
	maxIterations int     // DefaultMaxIterations; > 0
	tolerance     float64 // DefaultTolerance; >= 0, 0 ⇒ backend epsilon
}

// WithScaling toggles row equilibration before LU decomposition.
func WithScaling(enabled bool) Option {
	return func(o *Options) { o.scaling = enabled }
}

// WithMaxIterations sets the refinement iteration budget.
// Panics if iterations <= 0.
func WithMaxIterations(iterations int) Option {
	if iterations <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = iterations }
}

// WithTolerance sets the relative convergence threshold of refinement:
// the loop stops once ‖δ‖∞ <= tolerance·‖x‖∞. Zero means "backend epsilon".
// Panics if tolerance is negative, NaN or Inf.
func WithTolerance(tolerance float64) Option {
	if tolerance < 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tolerance }
}

// gatherOptions resolves defaults, applies user options in order, and
// returns the effective configuration.
func gatherOptions(opts ...Option) Options {
	o := Options{
		scaling:       DefaultScaling,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
