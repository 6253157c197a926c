package borrow

import (
	"bytes"
	"sort"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// Node is a non-owning bencode value. Bytes, and the keys of Entries, alias
// the parsed input.
type Node struct {
	Type    ir.Type
	Int     int64
	Bytes   []byte
	List    []Node
	Entries []Entry
}

type Entry struct {
	Key   []byte
	Value Node
}

func (n *Node) IsNone() bool       { return n == nil || n.Type == ir.NoneType }
func (n *Node) IsInteger() bool    { return n != nil && n.Type == ir.IntegerType }
func (n *Node) IsString() bool     { return n != nil && n.Type == ir.StringType }
func (n *Node) IsList() bool       { return n != nil && n.Type == ir.ListType }
func (n *Node) IsDictionary() bool { return n != nil && n.Type == ir.DictionaryType }

func (n *Node) AsInt() (int64, bool) {
	if !n.IsInteger() {
		return 0, false
	}
	return n.Int, true
}

// AsBytes returns the borrowed byte string.
func (n *Node) AsBytes() ([]byte, bool) {
	if !n.IsString() {
		return nil, false
	}
	return n.Bytes, true
}

// AsString copies the byte string into a Go string.
func (n *Node) AsString() (string, bool) {
	if !n.IsString() {
		return "", false
	}
	return string(n.Bytes), true
}

func (n *Node) AsList() ([]Node, bool) {
	if !n.IsList() {
		return nil, false
	}
	return n.List, true
}

func (n *Node) Len() int {
	switch n.Type {
	case ir.ListType:
		return len(n.List)
	case ir.DictionaryType:
		return len(n.Entries)
	case ir.StringType:
		return len(n.Bytes)
	}
	return 0
}

// Get returns the value under key, or nil. Entries must be in ascending key
// order, as Parse produces them.
func (n *Node) Get(key string) *Node {
	if !n.IsDictionary() {
		return nil
	}
	i := sort.Search(len(n.Entries), func(i int) bool {
		return string(n.Entries[i].Key) >= key
	})
	if i < len(n.Entries) && string(n.Entries[i].Key) == key {
		return &n.Entries[i].Value
	}
	return nil
}

// GetBytes is Get with a byte slice key.
func (n *Node) GetBytes(key []byte) *Node {
	if !n.IsDictionary() {
		return nil
	}
	i := sort.Search(len(n.Entries), func(i int) bool {
		return bytes.Compare(n.Entries[i].Key, key) >= 0
	})
	if i < len(n.Entries) && bytes.Equal(n.Entries[i].Key, key) {
		return &n.Entries[i].Value
	}
	return nil
}

// ToOwned deep-copies n into an ir.Node that no longer references the
// input.
func (n *Node) ToOwned() *ir.Node {
	switch n.Type {
	case ir.IntegerType:
		return ir.FromInt(n.Int)
	case ir.StringType:
		return ir.FromBytes(n.Bytes)
	case ir.ListType:
		res := &ir.Node{Type: ir.ListType, Values: make([]*ir.Node, len(n.List))}
		for i := range n.List {
			res.Values[i] = n.List[i].ToOwned()
		}
		return res
	case ir.DictionaryType:
		res := &ir.Node{
			Type:   ir.DictionaryType,
			Fields: make([]*ir.Node, len(n.Entries)),
			Values: make([]*ir.Node, len(n.Entries)),
		}
		for i := range n.Entries {
			res.Fields[i] = ir.FromBytes(n.Entries[i].Key)
			res.Values[i] = n.Entries[i].Value.ToOwned()
		}
		return res
	}
	return ir.None()
}

const (
	integerType    = ir.IntegerType
	stringType     = ir.StringType
	listType       = ir.ListType
	dictionaryType = ir.DictionaryType
)
