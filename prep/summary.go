// SPDX-License-Identifier: MIT

package prep

import (
	"fmt"

	"github.com/katalvlaran/dataprep/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes an interaction matrix.
type Summary struct {
	Rows, Cols int
	NNZ        int
	Density    float64 // NNZ / (Rows*Cols); 0 for an empty shape
	Total      float64 // sum of stored values
	RowMean    float64 // mean stored entries per row
	RowStdDev  float64 // sample std-dev of stored entries per row; 0 below two rows
	EmptyRows  int     // rows with no stored entry (e.g. users without interactions)
}

// Summarize computes matrix statistics in O(rows + nnz).
func Summarize[T sparse.Number](m *sparse.CSR[T]) Summary {
	s := Summary{Rows: m.Rows(), Cols: m.Cols(), NNZ: m.NNZ()}
	if cells := s.Rows * s.Cols; cells > 0 {
		s.Density = float64(s.NNZ) / float64(cells)
	}

	data := m.Data()
	vals := make([]float64, len(data))
	for k, v := range data {
		vals[k] = float64(v)
	}
	s.Total = floats.Sum(vals)

	indptr := m.Indptr()
	counts := make([]float64, s.Rows)
	for i := range counts {
		counts[i] = float64(indptr[i+1] - indptr[i])
		if counts[i] == 0 {
			s.EmptyRows++
		}
	}
	switch {
	case len(counts) >= 2:
		s.RowMean, s.RowStdDev = stat.MeanStdDev(counts, nil)
	case len(counts) == 1:
		s.RowMean = counts[0]
	}

	return s
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("%d×%d nnz=%d density=%.4g total=%g row_mean=%.4g row_std=%.4g empty_rows=%d",
		s.Rows, s.Cols, s.NNZ, s.Density, s.Total, s.RowMean, s.RowStdDev, s.EmptyRows)
}
