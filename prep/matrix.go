// SPDX-License-Identifier: MIT

// Package prep - MatrixBuilder: remapped records -> CSR.
//
// Implementation:
//   - Stage 1: validate the Description.
//   - Stage 2: read user and item code columns (full column, row order).
//   - Stage 3: read feedback values, or synthesize ones.
//   - Stage 4: sparse.FromTriplets with the declared shape; duplicates summed.
//
// Complexity:
//   - Time O(n + NUsers + Σ k_i log k_i); the inputs are never modified.

package prep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dataprep/sparse"
	"github.com/katalvlaran/dataprep/table"
)

// MatrixFromData builds the NUsers×NItems matrix with float64 storage, the
// default type for both implicit and explicit feedback.
func MatrixFromData(t *table.Table, d Description, opts ...sparse.Option) (*sparse.CSR[float64], error) {
	return MatrixFromDataAs[float64](t, d, opts...)
}

// MatrixFromDataAs builds the NUsers×NItems matrix with storage type T.
// MAIN DESCRIPTION:
//   - Cell (u,i) is the sum of the feedback of all rows with user code u and
//     item code i (the row count under implicit feedback).
//
// Errors:
//   - ErrMissingField for empty or absent users/items/feedback fields.
//   - table.ErrKindMismatch / table.ErrMissingValue for code columns that are
//     not complete int64 columns (i.e. remapping was skipped).
//   - ErrOutOfRange (from sparse construction) for codes outside the shape.
//
// Notes:
//   - Float feedback converted to an integer T truncates toward zero.
func MatrixFromDataAs[T sparse.Number](t *table.Table, d Description, opts ...sparse.Option) (*sparse.CSR[T], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	users, err := codeColumn(t, d.Users)
	if err != nil {
		return nil, err
	}
	items, err := codeColumn(t, d.Items)
	if err != nil {
		return nil, err
	}

	var vals []T
	if d.HasFeedback() {
		if vals, err = feedbackColumn[T](t, d.Feedback); err != nil {
			return nil, err
		}
	} else {
		vals = sparse.Ones[T](len(users))
	}

	m, err := sparse.FromTriplets(d.NUsers, d.NItems, users, items, vals, opts...)
	if err != nil {
		return nil, fmt.Errorf("MatrixFromData: %w", err)
	}

	return m, nil
}

// codeColumn reads an int64 code column as []int.
func codeColumn(t *table.Table, field string) ([]int, error) {
	c, err := t.Column(field)
	if err != nil {
		return nil, fmt.Errorf("MatrixFromData: %w", err)
	}
	raw, err := c.Ints()
	if err != nil {
		return nil, fmt.Errorf("MatrixFromData: %w", err)
	}
	out := make([]int, len(raw))
	for k, v := range raw {
		out[k] = int(v)
	}

	return out, nil
}

// feedbackColumn reads numeric feedback as T. Complete int columns convert
// exactly; everything else goes through float64 (missing -> NaN).
func feedbackColumn[T sparse.Number](t *table.Table, field string) ([]T, error) {
	c, err := t.Column(field)
	if err != nil {
		return nil, fmt.Errorf("MatrixFromData: feedback: %w", err)
	}
	if c.Kind() == table.KindInt {
		ints, err := c.Ints()
		if err == nil {
			out := make([]T, len(ints))
			for k, v := range ints {
				out[k] = T(v)
			}
			return out, nil
		}
		if !errors.Is(err, table.ErrMissingValue) {
			return nil, fmt.Errorf("MatrixFromData: feedback: %w", err)
		}
	}
	floats, err := c.Floats()
	if err != nil {
		return nil, fmt.Errorf("MatrixFromData: feedback: %w", err)
	}
	out := make([]T, len(floats))
	for k, v := range floats {
		out[k] = T(v)
	}

	return out, nil
}
