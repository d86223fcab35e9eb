// SPDX-License-Identifier: MIT
// Package remap: sentinel error set, prefixed "remap: ...".

package remap

import (
	"errors"

	"github.com/katalvlaran/dataprep/table"
)

var (
	// ErrMissingField indicates a field absent from the table. It is the
	// table package's sentinel, so errors.Is matches either name.
	ErrMissingField = table.ErrMissingField

	// ErrUnknownValue indicates a value that was not observed when the
	// IndexMap was built and therefore has no code.
	ErrUnknownValue = errors.New("remap: value has no code")

	// ErrUnknownCode indicates a code outside [0, Len()).
	ErrUnknownCode = errors.New("remap: code out of range")
)
