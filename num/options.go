// SPDX-License-Identifier: MIT

// Package num: functional configuration for the decimal and extended
// precision backends. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public constructors consume ...Option.

package num

import "github.com/cockroachdb/apd/v3"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultDecimalDigits is the working precision, in decimal digits, of
	// the Dec backend. 34 digits mirrors IEEE 754-2008 decimal128 and
	// comfortably exceeds the float64 backend it is refined against.
	DefaultDecimalDigits = 34

	// DefaultQuadPrec is the mantissa size, in bits, of the Quad backend.
	// 120 bits yields ~36 decimal digits, the "extended precision" target.
	DefaultQuadPrec = 120

	// DefaultRounding is the rounding mode of the Dec backend.
	// Half-even matches both IEEE decimal arithmetic and big.Float.
	DefaultRounding = apd.RoundHalfEven

	// MinQuadPrec bounds Quad below: anything under float64's 53-bit
	// mantissa would make "extended precision" a misnomer.
	MinQuadPrec = 64

	// MinDecimalDigits bounds Dec below for the same reason: fewer than
	// 16 digits cannot out-resolve the native backend it refines.
	MinDecimalDigits = 16
)

// Internal panic messages (no magic strings).
const (
	panicDecimalDigitsInvalid = "num: WithDecimalDigits: digits must be >= MinDecimalDigits"
	panicQuadPrecInvalid      = "num: WithQuadPrec: bits must be >= MinQuadPrec"
	panicRoundingInvalid      = "num: WithRounding: empty rounding mode"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in spirit: fields are private and public
// entry points accept `...Option`, resolving them via gatherOptions.
type Options struct {
	decimalDigits uint32      // >= MinDecimalDigits; DefaultDecimalDigits
	quadPrec      uint        // >= MinQuadPrec; DefaultQuadPrec
	rounding      apd.Rounder // DefaultRounding
}

// WithDecimalDigits sets the working precision of the Dec backend in
// decimal digits. Panics if digits < MinDecimalDigits.
func WithDecimalDigits(digits uint32) Option {
	if digits < MinDecimalDigits {
		panic(panicDecimalDigitsInvalid)
	}

	return func(o *Options) { o.decimalDigits = digits }
}

// WithQuadPrec sets the mantissa size of the Quad backend in bits.
// Panics if bits < MinQuadPrec.
func WithQuadPrec(bits uint) Option {
	if bits < MinQuadPrec {
		panic(panicQuadPrecInvalid)
	}

	return func(o *Options) { o.quadPrec = bits }
}

// WithRounding sets the rounding mode of the Dec backend.
// Panics on an empty mode.
func WithRounding(mode apd.Rounder) Option {
	if mode == "" {
		panic(panicRoundingInvalid)
	}

	return func(o *Options) { o.rounding = mode }
}

// gatherOptions resolves defaults, applies user options in order, and
// returns the effective configuration. Deterministic and allocation-light.
func gatherOptions(opts ...Option) Options {
	o := Options{
		decimalDigits: DefaultDecimalDigits,
		quadPrec:      DefaultQuadPrec,
		rounding:      DefaultRounding,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
