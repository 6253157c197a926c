// Package bencode decodes and encodes bencode documents.
//
// Three decoders share one grammar: a recursive descent parser (package
// parse), an iterative event decoder with an explicit stack (package
// stream) and a zero-copy parser over a byte slice (package borrow).
// Decode and ReadFile choose between them with WithParser. Encoding always
// produces the canonical form, with dictionary keys in ascending byte
// order.
//
//	node, err := bencode.Decode([]byte("d3:agei25e4:name4:Johne"))
//	...
//	out := bencode.Marshal(node) // "d3:agei25e4:name4:Johne"
package bencode
