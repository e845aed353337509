// SPDX-License-Identifier: MIT

// Package dense: error statistics between an expected and an actual slice.
// ErrorSet is a diagnostic entity, not production state: refinement-quality
// tests use it to show that accurate solves beat simple solves by a wide
// statistical margin.

package dense

import "math"

// ErrorSet aggregates the discrepancy between an expected and an actual
// value sequence: mean-squared error, mean absolute error and max absolute
// error, all measured in float64 regardless of the backend (the statistics
// grade orders of magnitude, not ulps).
type ErrorSet struct {
	MSE  float64 // mean of squared differences
	Mean float64 // mean of absolute differences
	Max  float64 // largest absolute difference
}

// NewErrorSet computes the statistics for two equally long slices.
// Errors: ErrDimensionMismatch when lengths differ or inputs are empty.
// Complexity: O(n).
func NewErrorSet(expected, actual []float64) (ErrorSet, error) {
	if len(expected) == 0 || len(expected) != len(actual) {
		return ErrorSet{}, validatorErrorf("NewErrorSet", ErrDimensionMismatch)
	}

	var es ErrorSet
	for i := range expected {
		d := math.Abs(expected[i] - actual[i])
		es.MSE += d * d
		es.Mean += d
		if d > es.Max {
			es.Max = d
		}
	}
	n := float64(len(expected))
	es.MSE /= n
	es.Mean /= n

	return es, nil
}

// Merge folds another ErrorSet of equal weight into es and returns the
// combined statistics (used to aggregate per-column inverse errors).
func (es ErrorSet) Merge(other ErrorSet) ErrorSet {
	out := ErrorSet{
		MSE:  (es.MSE + other.MSE) / 2,
		Mean: (es.Mean + other.Mean) / 2,
		Max:  es.Max,
	}
	if other.Max > out.Max {
		out.Max = other.Max
	}

	return out
}
