// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the CSR storage, the triplet
// builder and the dense export. Errors and options live in dedicated files
// (errors.go, options.go).
package sparse

// Number is the set of storage types a CSR may hold. It plays the role of an
// explicit numeric dtype: MatrixFromDataAs[float32] stores float32 values,
// MatrixFromDataAs[int64] stores counts, and so on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int // number of rows (users)
	Cols int // number of columns (items)
}

// DuplicatePolicy decides how FromTriplets resolves several triplets that
// address the same (row, col) cell.
type DuplicatePolicy int

const (
	// SumDuplicates accumulates all values of a cell. This is the standard
	// compressed-row semantics and the default.
	SumDuplicates DuplicatePolicy = iota

	// KeepFirst keeps the value of the first triplet in input order.
	KeepFirst

	// KeepLast keeps the value of the last triplet in input order.
	KeepLast
)

// String returns a stable, human-friendly name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case SumDuplicates:
		return "sum"
	case KeepFirst:
		return "first"
	case KeepLast:
		return "last"
	default:
		return "unknown"
	}
}
