package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/dataprep/sparse"
)

// ExampleFromTriplets builds a user × item matrix where user 0 rated item 2
// twice; the two ratings are summed into one cell.
func ExampleFromTriplets() {
	users := []int{0, 1, 0}
	items := []int{2, 0, 2}
	ratings := []float64{3, 4, 1.5}

	m, err := sparse.FromTriplets(2, 3, users, items, ratings)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := m.ToDense()

	fmt.Println("nnz:", m.NNZ())
	fmt.Print(d)

	// Output:
	// nnz: 2
	// [0, 0, 4.5]
	// [4, 0, 0]
}

// ExampleCSR_Row walks the stored entries of a single row.
func ExampleCSR_Row() {
	m, _ := sparse.FromTriplets(1, 4, []int{0, 0}, []int{3, 1}, sparse.Ones[int64](2))

	cols, vals, _ := m.Row(0)
	for k := range cols {
		fmt.Printf("item %d -> %d\n", cols[k], vals[k])
	}

	// Output:
	// item 1 -> 1
	// item 3 -> 1
}
