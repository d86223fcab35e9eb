// SPDX-License-Identifier: MIT

// Package remap - categorical encoding of identifier columns.
//
// Purpose:
//   - Turn arbitrary identifiers (user IDs, item IDs) into contiguous
//     zero-based codes ordered by value, and keep the reverse table.
//
// Implementation (per field):
//   - Stage 1: collect distinct non-missing values across all rows.
//   - Stage 2: sort them by natural order; rank = code.
//   - Stage 3: emit one code per row (MissingCode for missing values).
//
// Complexity:
//   - Time O(n + k log k) for n rows and k distinct values; Space O(n + k).

package remap

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dataprep/table"
)

// Entity labels used as keys of Indices.
const (
	EntityUsers = "users"
	EntityItems = "items"
)

// Indices maps an entity label (EntityUsers, EntityItems) to its IndexMap.
type Indices map[string]*IndexMap

// Users returns the users map (nil when absent).
func (ix Indices) Users() *IndexMap { return ix[EntityUsers] }

// Items returns the items map (nil when absent).
func (ix Indices) Items() *IndexMap { return ix[EntityItems] }

// ToNumericID computes the categorical codes of one field.
// MAIN DESCRIPTION:
//   - Code of row i is the rank of its value among the sorted distinct values
//     of the field. The table is not modified.
//
// Errors:
//   - ErrMissingField when the field does not exist.
//
// Edge cases:
//   - zero rows: empty codes and an IndexMap with Len()==0.
//   - duplicates collapse to one code.
func ToNumericID(t *table.Table, field string) ([]int64, *IndexMap, error) {
	col, err := t.Column(field)
	if err != nil {
		return nil, nil, fmt.Errorf("ToNumericID: %w", err)
	}
	values := col.Values()

	// Stage 1: distinct values.
	seen := make(map[any]struct{})
	categories := make([]any, 0)
	for _, v := range values {
		if v == nil {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			categories = append(categories, v)
		}
	}

	// Stage 2: natural order defines the codes.
	slices.SortFunc(categories, table.Compare)
	idx := newIndexMap(field, col.Kind(), categories)

	// Stage 3: one code per row.
	codes := make([]int64, len(values))
	for i, v := range values {
		if v == nil {
			codes[i] = MissingCode
			continue
		}
		codes[i] = int64(idx.codes[v])
	}

	return codes, idx, nil
}

// TransformIndices remaps the users and items fields of t in place.
// MAIN DESCRIPTION:
//   - For each of (EntityUsers, users) and (EntityItems, items): compute
//     codes with ToNumericID and replace the column by an int64 column of
//     the same name and position.
//   - Returns the same *table.Table (mutated) and the index maps.
//
// Behavior highlights:
//   - Both fields are looked up before any column is replaced, so a missing
//     field leaves t untouched.
//   - Each call recomputes mappings from scratch; earlier maps are not reused.
//
// Side effects:
//   - Mutates t. Callers must not access t concurrently.
func TransformIndices(t *table.Table, users, items string) (*table.Table, Indices, error) {
	for _, field := range []string{users, items} {
		if !t.HasColumn(field) {
			return nil, nil, fmt.Errorf("TransformIndices(%q): %w", field, ErrMissingField)
		}
	}

	type pending struct {
		entity, field string
		codes         []int64
	}
	work := []pending{{entity: EntityUsers, field: users}, {entity: EntityItems, field: items}}
	ix := make(Indices, len(work))
	for k := range work {
		codes, idx, err := ToNumericID(t, work[k].field)
		if err != nil {
			return nil, nil, err
		}
		work[k].codes = codes
		ix[work[k].entity] = idx
	}
	for _, w := range work {
		if err := t.SetColumn(table.IntColumn(w.field, w.codes)); err != nil {
			return nil, nil, fmt.Errorf("TransformIndices(%q): %w", w.field, err)
		}
	}

	return t, ix, nil
}
