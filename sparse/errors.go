// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No code path panics on user-triggered error
// conditions; panics are reserved for nonsensical option values.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for grep-ability. Detection
// sites wrap with call context (fmt.Errorf("CSR.At(%d,%d): %w", ...)), so
// callers always match with errors.Is, never with ==.
//
// ERROR PRIORITY (enforced in FromTriplets and covered by tests):
// shape -> triplet length mismatch -> index range -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero rows or zero columns are legal: an empty interaction log still
	// produces a well-formed matrix.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, dim).
	// FromTriplets surfaces this for codes that do not fit the declared shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates that the row, column and value slices
	// passed to FromTriplets have different lengths, or that two matrices
	// compared/combined have different shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value under the strict numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *CSR or *Dense was used.
	ErrNilMatrix = errors.New("sparse: nil receiver")
)
