// Package ir provides the owning in-memory representation of bencode
// values.
//
// # Node Structure
//
// A Node is a tagged union. The Type field selects which other fields are
// meaningful:
//
//   - NoneType: the absent value. It has no wire form and encodes to nothing.
//   - IntegerType: Int64 holds a signed 64-bit integer.
//   - StringType: String holds the raw bytes of a byte string. Go strings are
//     byte sequences, so arbitrary binary data round-trips unchanged.
//   - ListType: Values holds the elements in order.
//   - DictionaryType: Fields holds the keys (StringType nodes) and Values the
//     corresponding values, index for index.
//
// A tree is strictly a tree: nodes carry no parent links, and every child is
// owned by exactly one parent.
//
// # Dictionaries
//
// Dictionary keys are unique. In memory they may appear in any order;
// parsers produce them in wire order, which is ascending. The encoder and
// exporters use Sorted to visit entries in canonical order, and Compare
// treats two dictionaries with the same entries as equal whatever their
// in-memory order.
//
// # Creating Nodes
//
//	doc := ir.FromMap(map[string]*ir.Node{
//		"name": ir.FromString("John"),
//		"age":  ir.FromInt(25),
//	})
//	list := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Field Extraction
//
// Schema-style consumers read dictionaries with the Required* and Optional*
// helpers, which report ErrMissingField, ErrWrongType and ErrNotDictionary.
package ir
