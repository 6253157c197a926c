package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Dictionaries are compared entry by entry in canonical key order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	case DictionaryType:
		return compareDictionaries(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: None < Integer < String < List < Dictionary
func rank(t Type) int {
	switch t {
	case NoneType:
		return 0
	case IntegerType:
		return 1
	case StringType:
		return 2
	case ListType:
		return 3
	case DictionaryType:
		return 4
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDictionaries(a, b *Node) int {
	ea := a.Sorted()
	eb := b.Sorted()
	for i := range min(len(ea), len(eb)) {
		if c := strings.Compare(ea[i].Key.String, eb[i].Key.String); c != 0 {
			return c
		}
		if c := Compare(ea[i].Val, eb[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ea), len(eb))
}
