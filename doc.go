// Package dataprep turns interaction logs into the sparse matrices that
// recommender algorithms train on.
//
// 🚀 What does it do?
//
//	raw records ──► remap ──► remapped records + index maps ──► prep ──► CSR
//	(user, item, feedback)   (dense codes by sorted value)          (users × items)
//
// Under the hood, everything is organized under four subpackages:
//
//	table/ : ordered record table with named, typed columns; gota CSV/DataFrame interop
//	remap/ : categorical encoding: identifiers → contiguous codes + reversible IndexMap
//	sparse/: CSR[T] storage built from triplets (duplicates summed), Dense/gonum export
//	prep/  : matrix builder (Description, MatrixFromData) and the Prepare pipeline
//
// Quick example:
//
//	rows (bob,x) (amy,y) (bob,y)
//	  users: amy→0 bob→1   items: x→0 y→1
//	  matrix: [0 1]
//	          [1 1]
//
// See examples/ratings for a command-line walkthrough over a CSV file.
package dataprep
