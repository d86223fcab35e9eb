package prep_test

import (
	"fmt"

	"github.com/katalvlaran/dataprep/prep"
	"github.com/katalvlaran/dataprep/table"
)

// ExamplePrepare remaps a tiny log and builds its implicit-feedback matrix.
func ExamplePrepare() {
	t, _ := table.FromRecords([]string{"user", "item"},
		[]any{"bob", "x"},
		[]any{"amy", "y"},
		[]any{"bob", "y"},
	)

	res, err := prep.Prepare(t, "user", "item", "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := res.Matrix.ToDense()

	fmt.Println("users:", res.Indices.Users().Categories())
	fmt.Println("items:", res.Indices.Items().Categories())
	fmt.Print(d)

	// Output:
	// users: [amy bob]
	// items: [x y]
	// [0, 1]
	// [1, 1]
}

// ExampleMatrixFromData builds a matrix from an already remapped table with
// a declared shape larger than the observed codes.
func ExampleMatrixFromData() {
	t, _ := table.FromColumns(
		table.IntColumn("u", []int64{0, 0}),
		table.IntColumn("i", []int64{1, 1}),
		table.FloatColumn("r", []float64{2, 0.5}),
	)

	m, err := prep.MatrixFromData(t, prep.Description{Users: "u", Items: "i", Feedback: "r", NUsers: 2, NItems: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := m.ToDense()
	fmt.Print(d)

	// Output:
	// [0, 2.5, 0]
	// [0, 0, 0]
}
