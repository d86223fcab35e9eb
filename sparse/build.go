// SPDX-License-Identifier: MIT

// Package sparse - triplet (COO) ingestion into CSR.
//
// Purpose:
//   - Build a CSR directly from parallel (row, col, value) slices with an
//     explicit shape, the way an interaction log is turned into a
//     user × item matrix.
//   - Resolve repeated coordinates deterministically (sum by default).
//
// Determinism:
//   - Rows are filled by a stable counting placement, then each row is
//     stable-sorted by column, so KeepFirst/KeepLast follow input order.
//
// Complexity:
//   - Time O(n + rows + Σ k_i log k_i) for k_i triplets in row i; Space O(n + rows).

package sparse

import (
	"cmp"
	"slices"
)

// entry is one (col, value) pair inside a row during assembly.
type entry[T Number] struct {
	col int
	val T
}

// FromTriplets builds a rows×cols CSR from the triplets (ri[k], ci[k], vals[k]).
// MAIN DESCRIPTION:
//   - Construct the matrix directly from the triple (values, row indices,
//     column indices) with the declared shape. Rows and columns with no
//     triplet are legitimately all-zero.
//
// Implementation:
//   - Stage 1: resolve options; validate shape and triplets (lengths, ranges, finiteness).
//   - Stage 2: count entries per row and prefix-sum into a provisional indptr.
//   - Stage 3: place every triplet into its row segment in input order.
//   - Stage 4: stable-sort each segment by column and collapse duplicates per policy.
//   - Stage 5: optionally drop zero cells; compact into final arrays.
//
// Inputs:
//   - rows, cols: declared shape (>= 0); not inferred from the data.
//   - ri, ci, vals: parallel slices of equal length.
//
// Errors:
//   - ErrInvalidDimensions for negative shape.
//   - ErrDimensionMismatch for slices of different length.
//   - ErrOutOfRange for any index < 0 or >= its dimension.
//   - ErrNaNInf for non-finite values under WithValidateNaNInf.
//
// Notes:
//   - Inputs are never modified.
func FromTriplets[T Number](rows, cols int, ri, ci []int, vals []T, opts ...Option) (*CSR[T], error) {
	o := gatherOptions(opts...)

	// Stage 1: validation, in documented priority order.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if err := ValidateTriplets(rows, cols, ri, ci, vals, o.validateNaNInf); err != nil {
		return nil, err
	}

	// Stage 2: per-row counts -> provisional indptr.
	n := len(vals)
	indptr := make([]int, rows+1)
	var k, i int
	for k = 0; k < n; k++ {
		indptr[ri[k]+1]++
	}
	for i = 0; i < rows; i++ {
		indptr[i+1] += indptr[i]
	}

	// Stage 3: stable placement by row.
	next := slices.Clone(indptr[:rows])
	buf := make([]entry[T], n)
	for k = 0; k < n; k++ {
		r := ri[k]
		buf[next[r]] = entry[T]{col: ci[k], val: vals[k]}
		next[r]++
	}

	// Stage 4+5: per-row sort, duplicate policy, zero elimination, compaction.
	out := &CSR[T]{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, n),
		data:    make([]T, 0, n),
	}
	var zero T
	for i = 0; i < rows; i++ {
		seg := buf[indptr[i]:indptr[i+1]]
		slices.SortStableFunc(seg, func(a, b entry[T]) int { return cmp.Compare(a.col, b.col) })
		for s := 0; s < len(seg); {
			col, val := seg[s].col, seg[s].val
			e := s + 1
			for ; e < len(seg) && seg[e].col == col; e++ {
				switch o.duplicates {
				case SumDuplicates:
					val += seg[e].val
				case KeepLast:
					val = seg[e].val
				case KeepFirst:
					// first value already held
				}
			}
			s = e
			if o.eliminateZeros && val == zero {
				continue
			}
			out.indices = append(out.indices, col)
			out.data = append(out.data, val)
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Ones returns a slice of n unit values, the implicit feedback of an
// interaction log without explicit ratings.
func Ones[T Number](n int) []T {
	out := make([]T, n)
	for k := range out {
		out[k] = 1
	}

	return out
}
