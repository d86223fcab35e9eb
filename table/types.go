// SPDX-License-Identifier: MIT

// Package table: value kinds, normalization and the natural order used for
// categorical encoding.
package table

import (
	"cmp"
	"fmt"
	"math"
)

// Kind is the scalar type of a column.
type Kind uint8

const (
	// KindNone marks a column with no non-missing value yet.
	KindNone Kind = iota
	// KindString holds Go strings.
	KindString
	// KindInt holds int64 (all Go integer types are widened).
	KindInt
	// KindFloat holds float64 (float32 is widened); NaN is missing.
	KindFloat
	// KindBool holds bool.
	KindBool
)

// String returns a stable, human-friendly kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Normalize maps a Go value onto its canonical column representation.
// Returns (nil, KindNone) for nil, (nil, KindFloat) for NaN, and
// ErrUnsupportedValue for anything without a Kind.
func Normalize(v any) (any, Kind, error) {
	switch x := v.(type) {
	case nil:
		return nil, KindNone, nil
	case string:
		return x, KindString, nil
	case bool:
		return x, KindBool, nil
	case int:
		return int64(x), KindInt, nil
	case int8:
		return int64(x), KindInt, nil
	case int16:
		return int64(x), KindInt, nil
	case int32:
		return int64(x), KindInt, nil
	case int64:
		return x, KindInt, nil
	case uint8:
		return int64(x), KindInt, nil
	case uint16:
		return int64(x), KindInt, nil
	case uint32:
		return int64(x), KindInt, nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, KindNone, fmt.Errorf("Normalize(%v): %w", v, ErrUnsupportedValue)
		}
		return int64(x), KindInt, nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, KindNone, fmt.Errorf("Normalize(%v): %w", v, ErrUnsupportedValue)
		}
		return int64(x), KindInt, nil
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	default:
		return nil, KindNone, fmt.Errorf("Normalize(%T): %w", v, ErrUnsupportedValue)
	}
}

func normalizeFloat(f float64) (any, Kind, error) {
	if math.IsNaN(f) {
		return nil, KindFloat, nil
	}

	return f, KindFloat, nil
}

// Compare orders two non-missing values of the same kind by their natural
// order: numeric ascending, lexicographic for strings, false < true.
// Values of different kinds order by Kind, which never happens inside one
// column.
func Compare(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	return cmp.Compare(kindOf(a), kindOf(b))
}

// kindOf returns the kind of an already-normalized value.
func kindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case bool:
		return KindBool
	default:
		return KindNone
	}
}
