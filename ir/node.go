package ir

import (
	"maps"
	"slices"
	"strings"
)

type Node struct {
	Type   Type
	// Fields holds the keys of a dictionary, parallel to Values. Keys must
	// be unique; Set, Insert and FromKeyVals keep them so.
	Fields []*Node
	Values []*Node

	String string
	Int64  int64
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func None() *Node {
	return &Node{Type: NoneType}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBytes(v []byte) *Node {
	return &Node{Type: StringType, String: string(v)}
}

func NewList() *Node {
	return &Node{Type: ListType}
}

func NewDictionary() *Node {
	return &Node{Type: DictionaryType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ListType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap builds a dictionary with keys in ascending order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: DictionaryType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	for i, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

// FromKeyVals builds a dictionary keeping the order of kvs. A repeated key
// replaces the value of its first occurrence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: DictionaryType}
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		res.Set(kvs[i].Key.String, kvs[i].Val)
	}
	return res
}

func (y *Node) IsNone() bool       { return y == nil || y.Type == NoneType }
func (y *Node) IsInteger() bool    { return y != nil && y.Type == IntegerType }
func (y *Node) IsString() bool     { return y != nil && y.Type == StringType }
func (y *Node) IsList() bool       { return y != nil && y.Type == ListType }
func (y *Node) IsDictionary() bool { return y != nil && y.Type == DictionaryType }

// AsInt returns the integer held by y.
func (y *Node) AsInt() (int64, bool) {
	if !y.IsInteger() {
		return 0, false
	}
	return y.Int64, true
}

func (y *Node) AsString() (string, bool) {
	if !y.IsString() {
		return "", false
	}
	return y.String, true
}

// AsBytes returns a copy of the byte string held by y.
func (y *Node) AsBytes() ([]byte, bool) {
	if !y.IsString() {
		return nil, false
	}
	return []byte(y.String), true
}

func (y *Node) AsList() ([]*Node, bool) {
	if !y.IsList() {
		return nil, false
	}
	return y.Values, true
}

// Len is the number of elements of a list or entries of a dictionary, the
// byte length of a string, and 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ListType, DictionaryType:
		return len(y.Values)
	case StringType:
		return len(y.String)
	}
	return 0
}

// Get returns the value stored under key, or nil if y is not a dictionary
// or has no such key.
func (y *Node) Get(key string) *Node {
	if !y.IsDictionary() {
		return nil
	}
	if i := y.index(key); i >= 0 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) index(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Keys returns the dictionary keys in canonical order.
func (y *Node) Keys() []string {
	if !y.IsDictionary() {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	slices.Sort(res)
	return res
}

// Sorted returns the dictionary entries ordered by the raw bytes of their
// keys.
func (y *Node) Sorted() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	if slices.IsSortedFunc(res, cmpKeyVal) {
		return res
	}
	slices.SortFunc(res, cmpKeyVal)
	return res
}

func cmpKeyVal(a, b KeyVal) int {
	return strings.Compare(a.Key.String, b.Key.String)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Int64 = y.Int64
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
