// Package table holds tabular interaction records: ordered rows, named
// homogeneous columns, and missing values.
//
// A Table is the input of the categorical remapper (package remap) and of the
// matrix builder (package prep). Columns are immutable; the table itself is
// mutated only by column assignment (SetColumn), which is how identifier
// columns are replaced by their integer codes in place.
//
// Kinds: string, int (int64), float (float64, NaN = missing) and bool. Go
// integer and float types are widened on ingestion (see Normalize).
//
// CSV and DataFrame interop go through gota:
//
//	f, _ := os.Open("ratings.csv")
//	t, err := table.ReadCSV(f, dataframe.WithTypes(map[string]series.Type{
//	  "userId": series.String,
//	}))
//
// Errors are sentinels (errors.go) wrapped with context; match with errors.Is.
package table
