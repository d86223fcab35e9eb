// SPDX-License-Identifier: MIT
// Package prep: error set. MatrixBuilder failures are reported with the
// sentinels of the layer that detects them; they are re-exported here so
// callers of prep need a single import for matching.

package prep

import (
	"github.com/katalvlaran/dataprep/sparse"
	"github.com/katalvlaran/dataprep/table"
)

var (
	// ErrMissingField: a field named by the Description (or by Prepare) is
	// empty or absent from the table.
	ErrMissingField = table.ErrMissingField

	// ErrOutOfRange: a code is negative or not below NUsers/NItems. Surfaced
	// by sparse construction and propagated untouched.
	ErrOutOfRange = sparse.ErrOutOfRange

	// ErrInvalidDimensions: NUsers or NItems is negative.
	ErrInvalidDimensions = sparse.ErrInvalidDimensions
)
