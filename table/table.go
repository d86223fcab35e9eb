// SPDX-License-Identifier: MIT

// Package table - ordered, column-oriented record table.
//
// Purpose:
//   - Hold interaction records as named columns of equal length, preserving
//     row order and column insertion order.
//   - Support in-place column assignment (SetColumn), which the categorical
//     remapper uses to replace identifier columns with integer codes.
//
// Concurrency:
//   - A Table is not safe for concurrent mutation; callers serialize access.
//
// Complexity quicksheet:
//   - Column/HasColumn: O(1); SetColumn/AddColumn: O(1) amortized;
//     Row: O(width); Clone: O(rows*width).

package table

import (
	"fmt"
	"slices"
	"strings"
)

// Table is an ordered sequence of rows with named columns.
// The zero value is not usable; construct with New, FromColumns or FromRecords.
type Table struct {
	cols  []*Column      // insertion order
	pos   map[string]int // name -> index into cols
	nrows int            // row count, fixed by the first column
}

// New returns an empty table with no columns and no rows.
func New() *Table {
	return &Table{pos: make(map[string]int)}
}

// FromColumns builds a table from columns of equal length.
// Errors: ErrDuplicateColumn, ErrLengthMismatch.
func FromColumns(cols ...*Column) (*Table, error) {
	t := New()
	for _, c := range cols {
		if err := t.AddColumn(c); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// FromRecords builds a table from row-major records, one value per field.
// Every record must have exactly len(fields) values.
// Complexity: O(rows*width).
func FromRecords(fields []string, records ...[]any) (*Table, error) {
	byCol := make([][]any, len(fields))
	for j := range byCol {
		byCol[j] = make([]any, len(records))
	}
	for i, rec := range records {
		if len(rec) != len(fields) {
			return nil, fmt.Errorf("FromRecords: record %d has %d values for %d fields: %w",
				i, len(rec), len(fields), ErrLengthMismatch)
		}
		for j, v := range rec {
			byCol[j][i] = v
		}
	}
	t := New()
	for j, name := range fields {
		c, err := NewColumn(name, byCol[j]...)
		if err != nil {
			return nil, err
		}
		if err = t.AddColumn(c); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.nrows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.name
	}

	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.pos[name]

	return ok
}

// Column returns the named column or ErrMissingField.
func (t *Table) Column(name string) (*Column, error) {
	j, ok := t.pos[name]
	if !ok {
		return nil, fmt.Errorf("Table.Column(%q): %w", name, ErrMissingField)
	}

	return t.cols[j], nil
}

// checkLen enforces the row-count invariant for a new column.
func (t *Table) checkLen(method string, c *Column) error {
	if len(t.cols) > 0 && c.Len() != t.nrows {
		return fmt.Errorf("Table.%s(%q): %d rows, table has %d: %w", method, c.name, c.Len(), t.nrows, ErrLengthMismatch)
	}

	return nil
}

// AddColumn appends a column. Its name must be new and its length must match
// the table (the first column fixes the row count).
func (t *Table) AddColumn(c *Column) error {
	if _, ok := t.pos[c.name]; ok {
		return fmt.Errorf("Table.AddColumn(%q): %w", c.name, ErrDuplicateColumn)
	}
	if err := t.checkLen("AddColumn", c); err != nil {
		return err
	}
	if len(t.cols) == 0 {
		t.nrows = c.Len()
	}
	t.pos[c.name] = len(t.cols)
	t.cols = append(t.cols, c)

	return nil
}

// SetColumn assigns c in place: an existing column of the same name is
// replaced at its position, otherwise c is appended.
func (t *Table) SetColumn(c *Column) error {
	j, ok := t.pos[c.name]
	if !ok {
		return t.AddColumn(c)
	}
	if err := t.checkLen("SetColumn", c); err != nil {
		return err
	}
	t.cols[j] = c

	return nil
}

// Row returns row i as a field -> value mapping (nil for missing values).
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= t.nrows {
		return nil, fmt.Errorf("Table.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make(map[string]any, len(t.cols))
	for _, c := range t.cols {
		out[c.name] = c.values[i]
	}

	return out, nil
}

// Clone returns a copy whose columns can be replaced without affecting t.
func (t *Table) Clone() *Table {
	out := &Table{
		cols:  slices.Clone(t.cols), // columns are immutable; sharing them is safe
		pos:   make(map[string]int, len(t.pos)),
		nrows: t.nrows,
	}
	for k, v := range t.pos {
		out.pos[k] = v
	}

	return out
}

// String returns a one-line summary "rows×width [col(kind)[n] ...]".
func (t *Table) String() string {
	parts := make([]string, len(t.cols))
	for j, c := range t.cols {
		parts[j] = c.String()
	}

	return fmt.Sprintf("%d×%d [%s]", t.nrows, len(t.cols), strings.Join(parts, " "))
}
