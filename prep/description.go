// SPDX-License-Identifier: MIT

package prep

import (
	"fmt"

	"github.com/katalvlaran/dataprep/remap"
)

// Description tells MatrixFromData which fields hold what and the matrix shape.
//
// Fields:
//   - Users, Items: names of the code columns (required).
//   - Feedback: name of the numeric feedback column; empty selects
//     implicit feedback (every row contributes 1).
//   - NUsers, NItems: declared shape; codes must lie in [0, NUsers) and
//     [0, NItems). The shape is never inferred from the data.
type Description struct {
	Users    string
	Items    string
	Feedback string
	NUsers   int
	NItems   int
}

// HasFeedback reports whether an explicit feedback column is configured.
func (d Description) HasFeedback() bool { return d.Feedback != "" }

// Validate checks required names and non-negative dimensions.
// Errors: ErrMissingField, ErrInvalidDimensions.
func (d Description) Validate() error {
	if d.Users == "" {
		return fmt.Errorf("Description: users: %w", ErrMissingField)
	}
	if d.Items == "" {
		return fmt.Errorf("Description: items: %w", ErrMissingField)
	}
	if d.NUsers < 0 || d.NItems < 0 {
		return fmt.Errorf("Description: shape (%d,%d): %w", d.NUsers, d.NItems, ErrInvalidDimensions)
	}

	return nil
}

// DescribeIndices derives a Description whose shape is the size of the index
// maps produced by remap.TransformIndices. feedback may be empty.
// Missing maps count as size 0.
func DescribeIndices(users, items, feedback string, ix remap.Indices) Description {
	d := Description{Users: users, Items: items, Feedback: feedback}
	if m := ix.Users(); m != nil {
		d.NUsers = m.Len()
	}
	if m := ix.Items(); m != nil {
		d.NItems = m.Len()
	}

	return d
}
