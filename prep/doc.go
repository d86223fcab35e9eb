// Package prep turns remapped interaction records into the sparse user × item
// matrix recommender algorithms train on.
//
// Two entry points:
//
//   - MatrixFromData / MatrixFromDataAs[T]: the builder. The table must
//     already hold integer codes (see package remap) and the Description
//     supplies field names and the declared shape.
//   - Prepare: the full flow, remap → describe → build, with optional
//     structured logging (zerolog) and matrix options.
//
// Example:
//
//	res, err := prep.Prepare(t, "userId", "movieId", "rating",
//	  prep.WithLogger(logger))
//	if err != nil {
//	  // prep.ErrMissingField, prep.ErrOutOfRange, ...
//	}
//	fmt.Println(prep.Summarize(res.Matrix))
//
// Without a feedback field every row counts as 1, so each cell holds the
// number of interactions of that user with that item.
package prep
