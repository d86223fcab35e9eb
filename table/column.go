// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
	"slices"
)

// Column is a named, homogeneous sequence of values, one per row.
// Values are stored normalized (see Normalize); nil marks a missing value.
// A Column is immutable once built: tables replace columns, never edit them.
type Column struct {
	name   string
	kind   Kind
	values []any
}

// NewColumn normalizes values into a column.
// The kind is taken from the first non-missing value; later values of a
// different kind fail with ErrMixedKinds.
// Complexity: O(n).
func NewColumn(name string, values ...any) (*Column, error) {
	c := &Column{name: name, kind: KindNone, values: make([]any, len(values))}
	for i, v := range values {
		nv, k, err := Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("NewColumn(%q) row %d: %w", name, i, err)
		}
		if k != KindNone {
			if c.kind == KindNone {
				c.kind = k
			} else if c.kind != k {
				return nil, fmt.Errorf("NewColumn(%q) row %d: %s after %s: %w", name, i, k, c.kind, ErrMixedKinds)
			}
		}
		c.values[i] = nv
	}

	return c, nil
}

// StringColumn builds a KindString column.
func StringColumn(name string, values []string) *Column {
	c := &Column{name: name, kind: KindString, values: make([]any, len(values))}
	for i, v := range values {
		c.values[i] = v
	}

	return c
}

// IntColumn builds a KindInt column.
func IntColumn(name string, values []int64) *Column {
	c := &Column{name: name, kind: KindInt, values: make([]any, len(values))}
	for i, v := range values {
		c.values[i] = v
	}

	return c
}

// FloatColumn builds a KindFloat column; NaN entries become missing.
func FloatColumn(name string, values []float64) *Column {
	c := &Column{name: name, kind: KindFloat, values: make([]any, len(values))}
	for i, v := range values {
		if !math.IsNaN(v) {
			c.values[i] = v
		}
	}

	return c
}

// BoolColumn builds a KindBool column.
func BoolColumn(name string, values []bool) *Column {
	c := &Column{name: name, kind: KindBool, values: make([]any, len(values))}
	for i, v := range values {
		c.values[i] = v
	}

	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.values) }

// At returns the value of row i (nil when missing).
func (c *Column) At(i int) (any, error) {
	if i < 0 || i >= len(c.values) {
		return nil, fmt.Errorf("Column(%q).At(%d): %w", c.name, i, ErrOutOfRange)
	}

	return c.values[i], nil
}

// IsMissing reports whether row i holds no value. Out-of-range rows report true.
func (c *Column) IsMissing(i int) bool {
	return i < 0 || i >= len(c.values) || c.values[i] == nil
}

// Values returns a copy of all values in row order.
func (c *Column) Values() []any { return slices.Clone(c.values) }

// Ints returns the column as int64 values.
// Requires KindInt (or an empty column) and no missing values.
// Complexity: O(n).
func (c *Column) Ints() ([]int64, error) {
	if c.kind != KindInt && !(c.kind == KindNone && len(c.values) == 0) {
		return nil, fmt.Errorf("Column(%q).Ints: kind %s: %w", c.name, c.kind, ErrKindMismatch)
	}
	out := make([]int64, len(c.values))
	for i, v := range c.values {
		if v == nil {
			return nil, fmt.Errorf("Column(%q).Ints: row %d: %w", c.name, i, ErrMissingValue)
		}
		out[i] = v.(int64)
	}

	return out, nil
}

// Floats returns the column as float64 values; missing values become NaN.
// Requires KindInt, KindFloat or KindNone.
// Complexity: O(n).
func (c *Column) Floats() ([]float64, error) {
	if c.kind != KindInt && c.kind != KindFloat && c.kind != KindNone {
		return nil, fmt.Errorf("Column(%q).Floats: kind %s: %w", c.name, c.kind, ErrKindMismatch)
	}
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		switch x := v.(type) {
		case int64:
			out[i] = float64(x)
		case float64:
			out[i] = x
		default:
			out[i] = math.NaN()
		}
	}

	return out, nil
}

// String returns "name(kind)[n]".
func (c *Column) String() string {
	return fmt.Sprintf("%s(%s)[%d]", c.name, c.kind, len(c.values))
}
