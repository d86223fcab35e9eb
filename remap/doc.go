// Package remap converts identifier columns into dense integer codes.
//
// Codes follow the sorted order of the distinct values of a field (numeric
// ascending, lexicographic for strings), not first occurrence: code 0 is the
// smallest identifier. The IndexMap returned next to the codes decodes every
// code back to its identifier and encodes known identifiers to codes.
//
//	t, ix, err := remap.TransformIndices(t, "userId", "movieId")
//	// t's userId and movieId columns now hold int64 codes
//	// ix.Users().Value(0) is the smallest userId
//
// Missing identifiers get MissingCode (-1). Identifiers unseen at build time
// have no code: IndexMap.Code and IndexMap.Encode fail with ErrUnknownValue
// rather than extend the mapping.
package remap
