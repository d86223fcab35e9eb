// SPDX-License-Identifier: MIT

// Package remap - IndexMap: the bidirectional code <-> value table.
//
// Purpose:
//   - Decode: categories[code] is the original value (array indexed by code).
//   - Encode: codes[value] is the code (reverse lookup map).
//   - Both directions cover exactly the distinct non-missing values observed
//     when the map was built; anything else is an error, never a new code.
//
// Determinism:
//   - categories is sorted ascending by the kind's natural order, so the same
//     data always yields the same codes.

package remap

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dataprep/table"
)

// MissingCode is the code emitted for rows whose value is missing.
// It is never a valid code of any IndexMap.
const MissingCode int64 = -1

// IndexMap relates dense codes {0..Len()-1} to original identifiers.
// Immutable after construction.
type IndexMap struct {
	field      string      // source field name, for identification only
	kind       table.Kind  // kind of the original values
	categories []any       // code -> value, ascending
	codes      map[any]int // value -> code
}

// newIndexMap builds the map from already sorted, distinct categories.
func newIndexMap(field string, kind table.Kind, categories []any) *IndexMap {
	codes := make(map[any]int, len(categories))
	for code, v := range categories {
		codes[v] = code
	}

	return &IndexMap{field: field, kind: kind, categories: categories, codes: codes}
}

// Field returns the name of the field the map was built from.
func (m *IndexMap) Field() string { return m.field }

// Kind returns the kind of the original values.
func (m *IndexMap) Kind() table.Kind { return m.kind }

// Len returns the number of distinct values (= number of codes).
func (m *IndexMap) Len() int { return len(m.categories) }

// Value decodes a code into the original value.
// Complexity: O(1).
func (m *IndexMap) Value(code int) (any, error) {
	if code < 0 || code >= len(m.categories) {
		return nil, fmt.Errorf("IndexMap(%q).Value(%d): %w", m.field, code, ErrUnknownCode)
	}

	return m.categories[code], nil
}

// Code encodes an original value. The value is normalized first, so int and
// int64 (or float32 and float64) address the same category.
// Complexity: O(1) expected.
func (m *IndexMap) Code(value any) (int, error) {
	nv, _, err := table.Normalize(value)
	if err != nil {
		return 0, fmt.Errorf("IndexMap(%q).Code: %w", m.field, err)
	}
	code, ok := m.codes[nv]
	if !ok {
		return 0, fmt.Errorf("IndexMap(%q).Code(%v): %w", m.field, value, ErrUnknownValue)
	}

	return code, nil
}

// Categories returns a copy of the decode table (index = code).
func (m *IndexMap) Categories() []any { return slices.Clone(m.categories) }

// Encode applies the map to other values, e.g. a held-out log. Missing
// values encode to MissingCode; unseen values fail with ErrUnknownValue.
// Complexity: O(n).
func (m *IndexMap) Encode(values []any) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		nv, _, err := table.Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("IndexMap(%q).Encode row %d: %w", m.field, i, err)
		}
		if nv == nil {
			out[i] = MissingCode
			continue
		}
		code, ok := m.codes[nv]
		if !ok {
			return nil, fmt.Errorf("IndexMap(%q).Encode row %d (%v): %w", m.field, i, v, ErrUnknownValue)
		}
		out[i] = int64(code)
	}

	return out, nil
}

// Decode maps codes back to original values; MissingCode decodes to nil.
// Complexity: O(n).
func (m *IndexMap) Decode(codes []int64) ([]any, error) {
	out := make([]any, len(codes))
	for i, c := range codes {
		if c == MissingCode {
			continue
		}
		if c < 0 || c >= int64(len(m.categories)) {
			return nil, fmt.Errorf("IndexMap(%q).Decode row %d (%d): %w", m.field, i, c, ErrUnknownCode)
		}
		out[i] = m.categories[c]
	}

	return out, nil
}

// String returns "field: k categories".
func (m *IndexMap) String() string {
	return fmt.Sprintf("%s: %d categories", m.field, len(m.categories))
}
