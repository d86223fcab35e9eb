// Package sparse provides a compressed sparse row (CSR) matrix built from
// coordinate triplets, the storage format recommender algorithms consume.
//
// 🚀 What is CSR?
//
//	A rows×cols matrix stored as three flat arrays:
//	  indptr : len rows+1; row i lives in [indptr[i], indptr[i+1])
//	  indices: column of every stored entry, ascending within a row
//	  data   : value of every stored entry
//	Only observed cells cost memory, and a whole row is one contiguous slice.
//
// ✨ Key features:
//   - FromTriplets: O(n + rows) counting placement from (row, col, value) slices
//   - duplicate coordinates summed by default (WithDuplicates for first/last)
//   - explicit shape: rows/cols with no entries are legal all-zero lines
//   - generic storage type (Number): float64, float32, int64, ...
//   - safe accessors: At/Row/SliceRows/SliceCols return errors, never panic
//   - Dense export and a bridge to gonum's mat.Dense
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dataprep/sparse"
//
//	users := []int{1, 0, 1}
//	items := []int{0, 1, 1}
//	m, err := sparse.FromTriplets(2, 2, users, items, sparse.Ones[float64](3))
//	if err != nil {
//	  // ErrOutOfRange for a code outside the declared shape, ...
//	}
//	v, _ := m.At(1, 1) // 1
//
// Errors:
//
//	All failures are sentinel errors (errors.go) wrapped with call context;
//	match them with errors.Is.
package sparse
