package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// ToAny converts y to plain Go values: int64, string, []any,
// map[string]any, and nil for None.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case IntegerType:
		return y.Int64
	case StringType:
		return y.String
	case ListType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case DictionaryType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values to a node. Integers of any width, strings,
// byte slices, slices, and string-keyed maps are accepted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return None(), nil
	case *Node:
		return x, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case bool:
		if x {
			return FromInt(1), nil
		}
		return FromInt(0), nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrWrongType, x)
		}
		return FromInt(int64(x)), nil
	case string:
		return FromString(x), nil
	case []string:
		res := &Node{Type: ListType, Values: make([]*Node, len(x))}
		for i, e := range x {
			res.Values[i] = FromString(e)
		}
		return res, nil
	case []byte:
		return FromBytes(x), nil
	case []any:
		res := &Node{Type: ListType, Values: make([]*Node, len(x))}
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		res := &Node{Type: DictionaryType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, FromString(k))
			res.Values = append(res.Values, n)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: cannot represent %T", ErrWrongType, v)
}
