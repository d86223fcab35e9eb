// SPDX-License-Identifier: MIT

// Package prep: functional configuration of the Prepare pipeline.
// Defaults keep the library silent (no-op logger) and remap the caller's
// table in place.
package prep

import (
	"github.com/katalvlaran/dataprep/sparse"
	"github.com/rs/zerolog"
)

// DefaultCloneInput: Prepare mutates the caller's table unless WithCloneInput is given.
const DefaultCloneInput = false

// Option mutates internal pipeline options.
type Option func(*Options)

// Options stores the effective pipeline configuration.
type Options struct {
	logger     zerolog.Logger
	matrixOpts []sparse.Option
	cloneInput bool
}

// WithLogger routes stage logs (Debug level) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMatrixOptions forwards options to sparse.FromTriplets (duplicate
// policy, zero elimination, NaN/Inf validation). Repeated calls append.
func WithMatrixOptions(opts ...sparse.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithCloneInput makes Prepare remap a clone, leaving the caller's table as is.
func WithCloneInput() Option {
	return func(o *Options) { o.cloneInput = true }
}

// gatherOptions applies setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:     zerolog.Nop(),
		cloneInput: DefaultCloneInput,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
