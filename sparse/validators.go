// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks FromTriplets
//    and the accessors rely on.
//  - Return sentinel errors wrapped with a validator tag so call sites and
//    tests can match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing except on the error path.
//  - ValidateTriplets is a single O(n) pass.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are non-negative.
//
// Returns wrapped ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateTriplets checks a (rowIdx, colIdx, values) triple against a shape.
//
// Implementation:
//   - Stage 1: the three slices must have equal length (ErrDimensionMismatch).
//   - Stage 2: every row index must lie in [0, rows), every column index in
//     [0, cols) (ErrOutOfRange, reporting the first offending position).
//   - Stage 3: under checkFinite every value must be finite (ErrNaNInf).
//
// Complexity: O(n).
func ValidateTriplets[T Number](rows, cols int, ri, ci []int, vals []T, checkFinite bool) error {
	if len(ri) != len(ci) || len(ri) != len(vals) {
		return validatorErrorf(
			fmt.Sprintf("ValidateTriplets: len(rows)=%d len(cols)=%d len(values)=%d", len(ri), len(ci), len(vals)),
			ErrDimensionMismatch)
	}
	var k int
	for k = range ri {
		if ri[k] < 0 || ri[k] >= rows {
			return validatorErrorf(fmt.Sprintf("ValidateTriplets: row index %d at position %d (rows=%d)", ri[k], k, rows), ErrOutOfRange)
		}
		if ci[k] < 0 || ci[k] >= cols {
			return validatorErrorf(fmt.Sprintf("ValidateTriplets: column index %d at position %d (cols=%d)", ci[k], k, cols), ErrOutOfRange)
		}
	}
	if checkFinite {
		for k = range vals {
			if isNonFinite(float64(vals[k])) {
				return validatorErrorf(fmt.Sprintf("ValidateTriplets: value at position %d", k), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
// Assumes both are non-nil.
func ValidateSameShape[T Number](a, b *CSR[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
