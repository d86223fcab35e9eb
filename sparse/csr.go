// SPDX-License-Identifier: MIT

// Package sparse - compressed sparse row storage & safe accessors.
//
// Purpose:
//   - Store a (rows × cols) matrix as three flat arrays: indptr (len rows+1),
//     indices and data (len nnz). Row i occupies data[indptr[i]:indptr[i+1]].
//   - Keep column indices sorted ascending and unique within a row, so At is a
//     binary search and iteration order is deterministic.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking on out-of-range coordinates.
//
// Complexity quicksheet:
//   - NewCSR: O(rows); At: O(log nnz(row)); Row: O(1) view; SliceRows: O(nnz of slice);
//     SliceCols: O(nnz); ToDense: O(rows*cols).

package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// csrErrorf wraps an error with a uniform CSR context.
func csrErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, a, b, err)
}

// CSR is a compressed sparse row matrix with stored values of type T.
// The zero value is not usable; construct with NewCSR or FromTriplets.
type CSR[T Number] struct {
	rows, cols int
	indptr     []int // len rows+1, indptr[0]==0, non-decreasing
	indices    []int // column of each stored entry, sorted within a row
	data       []T   // stored values, aligned with indices
}

// NewCSR returns an all-zero rows×cols matrix with no stored entries.
// Zero-sized shapes are legal.
// Complexity: O(rows).
func NewCSR[T Number](rows, cols int) (*CSR[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &CSR[T]{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: []int{},
		data:    []T{},
	}, nil
}

// Rows returns the number of rows; 0 for a nil matrix.
func (m *CSR[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of columns; 0 for a nil matrix.
func (m *CSR[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Shape returns (rows, cols).
func (m *CSR[T]) Shape() Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// NNZ returns the number of stored entries. Explicit zeros count unless the
// matrix was built WithEliminateZeros.
func (m *CSR[T]) NNZ() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// At returns the value at (i, j), zero when no entry is stored.
// Complexity: O(log k) for k stored entries in row i.
func (m *CSR[T]) At(i, j int) (T, error) {
	var zero T
	if m == nil {
		return zero, csrErrorf("At", i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, csrErrorf("At", i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	if pos, found := slices.BinarySearch(m.indices[lo:hi], j); found {
		return m.data[lo+pos], nil
	}

	return zero, nil
}

// Row returns the stored column indices and values of row i.
// The slices are views into the matrix storage: callers must not modify them.
// Complexity: O(1).
func (m *CSR[T]) Row(i int) ([]int, []T, error) {
	if m == nil {
		return nil, nil, csrErrorf("Row", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, nil, csrErrorf("Row", i, 0, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi:hi], m.data[lo:hi:hi], nil
}

// RowNNZ returns the number of stored entries in row i.
func (m *CSR[T]) RowNNZ(i int) (int, error) {
	if m == nil {
		return 0, csrErrorf("RowNNZ", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return 0, csrErrorf("RowNNZ", i, 0, ErrOutOfRange)
	}

	return m.indptr[i+1] - m.indptr[i], nil
}

// SliceRows returns a new matrix holding rows [lo, hi) with all columns.
// lo == hi yields a 0×cols matrix.
// Complexity: O(nnz of the slice + (hi-lo)).
func (m *CSR[T]) SliceRows(lo, hi int) (*CSR[T], error) {
	if m == nil {
		return nil, csrErrorf("SliceRows", lo, hi, ErrNilMatrix)
	}
	if lo < 0 || hi > m.rows || lo > hi {
		return nil, csrErrorf("SliceRows", lo, hi, ErrOutOfRange)
	}
	start, end := m.indptr[lo], m.indptr[hi]
	out := &CSR[T]{
		rows:    hi - lo,
		cols:    m.cols,
		indptr:  make([]int, hi-lo+1),
		indices: slices.Clone(m.indices[start:end]),
		data:    slices.Clone(m.data[start:end]),
	}
	for i := lo; i <= hi; i++ {
		out.indptr[i-lo] = m.indptr[i] - start
	}

	return out, nil
}

// SliceCols returns a new matrix holding columns [lo, hi) with all rows.
// Column indices of the result are shifted by -lo.
// Complexity: O(nnz + rows).
func (m *CSR[T]) SliceCols(lo, hi int) (*CSR[T], error) {
	if m == nil {
		return nil, csrErrorf("SliceCols", lo, hi, ErrNilMatrix)
	}
	if lo < 0 || hi > m.cols || lo > hi {
		return nil, csrErrorf("SliceCols", lo, hi, ErrOutOfRange)
	}
	out := &CSR[T]{
		rows:    m.rows,
		cols:    hi - lo,
		indptr:  make([]int, m.rows+1),
		indices: []int{},
		data:    []T{},
	}
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			if c := m.indices[k]; c >= lo && c < hi {
				out.indices = append(out.indices, c-lo)
				out.data = append(out.data, m.data[k])
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Do calls fn for every stored entry in row-major order (row asc, col asc).
func (m *CSR[T]) Do(fn func(i, j int, v T)) {
	if m == nil {
		return
	}
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.indices[k], m.data[k])
		}
	}
}

// Indptr returns a copy of the row pointer array (len rows+1).
func (m *CSR[T]) Indptr() []int {
	if m == nil {
		return nil
	}

	return slices.Clone(m.indptr)
}

// Indices returns a copy of the column index array (len NNZ).
func (m *CSR[T]) Indices() []int {
	if m == nil {
		return nil
	}

	return slices.Clone(m.indices)
}

// Data returns a copy of the stored values (len NNZ).
func (m *CSR[T]) Data() []T {
	if m == nil {
		return nil
	}

	return slices.Clone(m.data)
}

// Clone returns a deep copy.
func (m *CSR[T]) Clone() *CSR[T] {
	if m == nil {
		return nil
	}

	return &CSR[T]{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  slices.Clone(m.indptr),
		indices: slices.Clone(m.indices),
		data:    slices.Clone(m.data),
	}
}

// Equal reports whether a and b have the same shape and the same stored
// entries. Two matrices differing only by explicitly stored zeros are not equal.
func (m *CSR[T]) Equal(other *CSR[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if ValidateSameShape(m, other) != nil {
		return false
	}

	return slices.Equal(m.indptr, other.indptr) &&
		slices.Equal(m.indices, other.indices) &&
		slices.Equal(m.data, other.data)
}

// ToDense materializes the matrix as a row-major float64 Dense.
// Complexity: O(rows*cols) memory.
func (m *CSR[T]) ToDense() (*Dense, error) {
	if m == nil {
		return nil, csrErrorf("ToDense", 0, 0, ErrNilMatrix)
	}
	d, err := NewDense(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	m.Do(func(i, j int, v T) {
		d.data[i*d.c+j] = float64(v)
	})

	return d, nil
}

// String lists stored entries one per line as "(i, j)\tv", preceded by a
// header with shape and NNZ.
func (m *CSR[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CSR %d×%d nnz=%d\n", m.rows, m.cols, len(m.data)))
	m.Do(func(i, j int, v T) {
		sb.WriteString(fmt.Sprintf("  (%d, %d)\t%v\n", i, j, v))
	})

	return sb.String()
}
