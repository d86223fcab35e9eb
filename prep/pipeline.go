// SPDX-License-Identifier: MIT

package prep

import (
	"fmt"

	"github.com/katalvlaran/dataprep/remap"
	"github.com/katalvlaran/dataprep/sparse"
	"github.com/katalvlaran/dataprep/table"
)

// Result bundles the artifacts of one Prepare call.
type Result struct {
	Table       *table.Table         // remapped table (the input itself unless WithCloneInput)
	Indices     remap.Indices        // users/items index maps
	Description Description          // fields and shape used for the matrix
	Matrix      *sparse.CSR[float64] // NUsers×NItems interaction matrix
}

// Prepare runs the whole flow: remap users and items, size the matrix from
// the index maps, then build it. feedback may be empty for implicit feedback.
//
// Implementation:
//   - Stage 1: check every named field exists before touching the table.
//   - Stage 2: remap.TransformIndices (in place, or on a clone).
//   - Stage 3: DescribeIndices + MatrixFromData.
//
// Errors:
//   - ErrMissingField for absent fields; construction errors propagate.
func Prepare(t *table.Table, users, items, feedback string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	log := o.logger.With().Str("component", "prep").Logger()

	fields := []string{users, items}
	if feedback != "" {
		fields = append(fields, feedback)
	}
	for _, f := range fields {
		if !t.HasColumn(f) {
			return nil, fmt.Errorf("Prepare(%q): %w", f, ErrMissingField)
		}
	}
	if o.cloneInput {
		t = t.Clone()
	}
	log.Debug().Int("rows", t.Len()).Strs("fields", fields).Bool("clone", o.cloneInput).Msg("prepare started")

	t, ix, err := remap.TransformIndices(t, users, items)
	if err != nil {
		return nil, err
	}
	for _, entity := range []string{remap.EntityUsers, remap.EntityItems} {
		log.Debug().
			Str("entity", entity).
			Str("field", ix[entity].Field()).
			Int("categories", ix[entity].Len()).
			Msg("remapped")
	}

	d := DescribeIndices(users, items, feedback, ix)
	m, err := MatrixFromData(t, d, o.matrixOpts...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("n_users", m.Rows()).
		Int("n_items", m.Cols()).
		Int("nnz", m.NNZ()).
		Bool("implicit", !d.HasFeedback()).
		Msg("matrix built")

	return &Result{Table: t, Indices: ix, Description: d, Matrix: m}, nil
}
