// Package borrow parses bencode without copying: every byte string in the
// resulting tree is a sub-slice of the input, which must outlive the tree and
// must not be modified while the tree is in use.
//
//	node, err := borrow.Parse(data)
//	name := node.Get("name").Bytes // aliases data
//
// Dictionary entries are kept in wire order, which the parser has verified
// is strictly ascending, so Get is a binary search.
//
// Errors from this package are bare token.Kind values. They carry no
// position, and converting them to error does not allocate. Validate checks
// a document without building anything and does not allocate at all.
//
// Unlike the cursor-based parsers, Parse and Validate require the value to
// span the whole input and report token.TrailingData otherwise.
package borrow
