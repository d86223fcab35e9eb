// Package table_test contains unit tests for Table and Column.
package table_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dataprep/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interactions returns the three-row bob/amy log used across tests.
func interactions(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromRecords([]string{"user", "item", "rating"},
		[]any{"bob", "x", 4.0},
		[]any{"amy", "y", 3.5},
		[]any{"bob", "y", 5.0},
	)
	require.NoError(t, err)

	return tb
}

// TestFromRecords checks shape, order and kinds.
func TestFromRecords(t *testing.T) {
	tb := interactions(t)

	require.Equal(t, 3, tb.Len())
	require.Equal(t, 3, tb.Width())
	require.Equal(t, []string{"user", "item", "rating"}, tb.Names())

	c, err := tb.Column("rating")
	require.NoError(t, err)
	require.Equal(t, table.KindFloat, c.Kind())

	row, err := tb.Row(1)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"user": "amy", "item": "y", "rating": 3.5}, row)

	_, err = tb.Row(3)
	require.ErrorIs(t, err, table.ErrOutOfRange)

	_, err = table.FromRecords([]string{"a", "b"}, []any{1})
	require.ErrorIs(t, err, table.ErrLengthMismatch)
}

// TestFromRecordsEmpty: zero records still define the columns.
func TestFromRecordsEmpty(t *testing.T) {
	tb, err := table.FromRecords([]string{"user", "item"})
	require.NoError(t, err)
	require.Zero(t, tb.Len())
	require.True(t, tb.HasColumn("user"))

	c, err := tb.Column("item")
	require.NoError(t, err)
	require.Equal(t, table.KindNone, c.Kind())
}

// TestColumnMissingField ensures unknown names surface ErrMissingField.
func TestColumnMissingField(t *testing.T) {
	tb := interactions(t)
	_, err := tb.Column("timestamp")
	require.ErrorIs(t, err, table.ErrMissingField)
	require.False(t, tb.HasColumn("timestamp"))
}

// TestNewColumnNormalization widens ints/floats and marks missing values.
func TestNewColumnNormalization(t *testing.T) {
	c, err := table.NewColumn("n", 1, int8(2), uint32(3), nil, int64(5))
	require.NoError(t, err)
	require.Equal(t, table.KindInt, c.Kind())
	require.Equal(t, []any{int64(1), int64(2), int64(3), nil, int64(5)}, c.Values())
	require.True(t, c.IsMissing(3))
	require.True(t, c.IsMissing(99))

	f, err := table.NewColumn("f", float32(0.5), math.NaN())
	require.NoError(t, err)
	require.Equal(t, table.KindFloat, f.Kind())
	require.True(t, f.IsMissing(1))

	_, err = table.NewColumn("mixed", "a", 1)
	require.ErrorIs(t, err, table.ErrMixedKinds)

	_, err = table.NewColumn("bad", struct{}{})
	require.ErrorIs(t, err, table.ErrUnsupportedValue)

	_, err = table.NewColumn("big", uint64(math.MaxUint64))
	require.ErrorIs(t, err, table.ErrUnsupportedValue)
}

// TestColumnAccessors covers Ints/Floats conversions and their errors.
func TestColumnAccessors(t *testing.T) {
	ints := table.IntColumn("code", []int64{2, 0, 1})
	got, err := ints.Ints()
	require.NoError(t, err)
	require.Equal(t, []int64{2, 0, 1}, got)

	fl, err := ints.Floats()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 1}, fl)

	withNA, err := table.NewColumn("r", 1.5, nil)
	require.NoError(t, err)
	fl, err = withNA.Floats()
	require.NoError(t, err)
	assert.Equal(t, 1.5, fl[0])
	assert.True(t, math.IsNaN(fl[1]))

	_, err = withNA.Ints()
	require.ErrorIs(t, err, table.ErrKindMismatch)

	intNA, err := table.NewColumn("u", 1, nil)
	require.NoError(t, err)
	_, err = intNA.Ints()
	require.ErrorIs(t, err, table.ErrMissingValue)

	_, err = table.StringColumn("s", []string{"a"}).Floats()
	require.ErrorIs(t, err, table.ErrKindMismatch)

	_, err = table.BoolColumn("b", []bool{true}).Floats()
	require.ErrorIs(t, err, table.ErrKindMismatch)

	v, err := ints.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
	_, err = ints.At(3)
	require.ErrorIs(t, err, table.ErrOutOfRange)
}

// TestAddSetColumn checks insertion order, in-place replacement and length guards.
func TestAddSetColumn(t *testing.T) {
	tb := interactions(t)

	err := tb.AddColumn(table.IntColumn("user", []int64{0, 0, 0}))
	require.ErrorIs(t, err, table.ErrDuplicateColumn)

	err = tb.AddColumn(table.IntColumn("ts", []int64{1, 2}))
	require.ErrorIs(t, err, table.ErrLengthMismatch)

	require.NoError(t, tb.SetColumn(table.IntColumn("user", []int64{1, 0, 1})))
	require.Equal(t, []string{"user", "item", "rating"}, tb.Names()) // position kept
	c, _ := tb.Column("user")
	require.Equal(t, table.KindInt, c.Kind())

	err = tb.SetColumn(table.IntColumn("user", []int64{1}))
	require.ErrorIs(t, err, table.ErrLengthMismatch)

	require.NoError(t, tb.SetColumn(table.IntColumn("ts", []int64{7, 8, 9})))
	require.Equal(t, []string{"user", "item", "rating", "ts"}, tb.Names())
}

// TestClone verifies column replacement on a clone does not leak back.
func TestClone(t *testing.T) {
	tb := interactions(t)
	cp := tb.Clone()
	require.NoError(t, cp.SetColumn(table.IntColumn("user", []int64{0, 0, 0})))

	orig, _ := tb.Column("user")
	require.Equal(t, table.KindString, orig.Kind())
}

// TestCompare checks the natural order of each kind.
func TestCompare(t *testing.T) {
	assert.Negative(t, table.Compare("amy", "bob"))
	assert.Positive(t, table.Compare(int64(10), int64(9)))
	assert.Zero(t, table.Compare(1.5, 1.5))
	assert.Negative(t, table.Compare(false, true))
	assert.Zero(t, table.Compare(true, true))
	assert.Negative(t, table.Compare("z", int64(0))) // kinds order string < int
}

// TestKindString covers the names.
func TestKindString(t *testing.T) {
	assert.Equal(t, "string", table.KindString.String())
	assert.Equal(t, "none", table.KindNone.String())
	assert.Equal(t, "kind(42)", table.Kind(42).String())
}

// TestTableString checks the summary line.
func TestTableString(t *testing.T) {
	require.Equal(t, "3×3 [user(string)[3] item(string)[3] rating(float)[3]]", interactions(t).String())
}
