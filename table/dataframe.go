// SPDX-License-Identifier: MIT

// Package table - gota DataFrame interop.
//
// Purpose:
//   - Load interaction logs with gota's CSV reader and type detection, then
//     convert them into a Table.
//   - Export a Table back into a DataFrame for further tabular work.
//
// Notes:
//   - gota NA elements map to missing values (nil) and back to "NaN".
//   - gota ints are Go int; they are widened to int64 on import.

package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/juju/errors"
)

// naLiteral is the textual NA marker gota understands for every series type.
const naLiteral = "NaN"

// ReadCSV parses CSV from r through gota (header row, type detection) and
// converts the result into a Table. Load options are passed to gota, e.g.
// dataframe.WithDelimiter('\t') or dataframe.WithTypes to force string IDs.
func ReadCSV(r io.Reader, opts ...dataframe.LoadOption) (*Table, error) {
	df := dataframe.ReadCSV(r, opts...)
	if df.Err != nil {
		return nil, errors.Annotate(df.Err, "table: read csv")
	}
	t, err := FromDataFrame(df)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return t, nil
}

// FromDataFrame converts every series of df into a column, keeping order.
// Complexity: O(rows*width).
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, errors.Annotate(df.Err, "table: dataframe")
	}
	t := New()
	for _, name := range df.Names() {
		c, err := fromSeries(df.Col(name))
		if err != nil {
			return nil, errors.Annotatef(err, "table: series %q", name)
		}
		if err = t.AddColumn(c); err != nil {
			return nil, errors.Trace(err)
		}
	}

	return t, nil
}

// fromSeries maps one gota series onto a Column of the matching Kind.
func fromSeries(s series.Series) (*Column, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c := &Column{name: s.Name, values: make([]any, s.Len())}
	switch s.Type() {
	case series.String:
		c.kind = KindString
	case series.Int:
		c.kind = KindInt
	case series.Float:
		c.kind = KindFloat
	case series.Bool:
		c.kind = KindBool
	default:
		return nil, fmt.Errorf("fromSeries(%q): type %s: %w", s.Name, s.Type(), ErrUnsupportedValue)
	}
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue // nil marks missing
		}
		switch c.kind {
		case KindString:
			c.values[i] = e.String()
		case KindInt:
			n, err := e.Int()
			if err != nil {
				return nil, err
			}
			c.values[i] = int64(n)
		case KindFloat:
			c.values[i] = e.Float()
		case KindBool:
			b, err := e.Bool()
			if err != nil {
				return nil, err
			}
			c.values[i] = b
		}
	}

	return c, nil
}

// ToDataFrame exports the table as a gota DataFrame, one series per column.
// KindNone columns become string series of NA.
func (t *Table) ToDataFrame() dataframe.DataFrame {
	ss := make([]series.Series, len(t.cols))
	for j, c := range t.cols {
		ss[j] = series.New(c.records(), seriesType(c.kind), c.name)
	}

	return dataframe.New(ss...)
}

// records renders values as strings with naLiteral for missing ones.
func (c *Column) records() []string {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		switch x := v.(type) {
		case nil:
			out[i] = naLiteral
		case string:
			out[i] = x
		case int64:
			out[i] = strconv.FormatInt(x, 10)
		case float64:
			out[i] = strconv.FormatFloat(x, 'g', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(x)
		}
	}

	return out
}

func seriesType(k Kind) series.Type {
	switch k {
	case KindInt:
		return series.Int
	case KindFloat:
		return series.Float
	case KindBool:
		return series.Bool
	default:
		return series.String
	}
}
