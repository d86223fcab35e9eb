// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every message is prefixed with "table: ..."; detection sites wrap with
// call context via %w and callers match with errors.Is.

package table

import "errors"

var (
	// ErrMissingField indicates that a requested column name is not present.
	ErrMissingField = errors.New("table: missing field")

	// ErrLengthMismatch indicates a column or record whose length differs
	// from the table's row count or field list.
	ErrLengthMismatch = errors.New("table: length mismatch")

	// ErrDuplicateColumn indicates AddColumn with a name already in use.
	ErrDuplicateColumn = errors.New("table: duplicate column")

	// ErrMixedKinds indicates a column whose non-missing values are not all
	// of the same Kind.
	ErrMixedKinds = errors.New("table: mixed value kinds in column")

	// ErrUnsupportedValue indicates a Go value that has no Kind (structs,
	// slices, uint64 beyond int64 range, ...).
	ErrUnsupportedValue = errors.New("table: unsupported value type")

	// ErrKindMismatch indicates a typed accessor used on a column of another kind.
	ErrKindMismatch = errors.New("table: column kind mismatch")

	// ErrMissingValue indicates a missing value where a concrete one is required.
	ErrMissingValue = errors.New("table: missing value")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("table: row index out of range")
)
