// Package encode writes IR nodes as canonical bencode and renders them as a
// human-readable tree.
//
// # Canonical Encoding
//
//	sink := token.NewBufferSink()
//	encode.Encode(node, sink)
//
// Dictionary entries are always written in ascending raw-byte key order,
// whatever their order in memory, and integers have no leading zeros, so
// encoding any tree produces the canonical form of its value. A None node
// produces no bytes. A None dictionary value drops its entry, so the output
// always parses.
//
// # Views
//
// View renders a node as an indented tree for people to read, optionally
// colored:
//
//	encode.View(node, os.Stdout, encode.ViewColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/clockworkengineer/bencode-sub000/ir - IR representation
//   - github.com/clockworkengineer/bencode-sub000/parse - Parse bencode to IR
package encode
