// Package parse implements the recursive-descent bencode parser.
//
// Parse reads a single value from a token.Source and builds an owning
// ir.Node tree. Nesting depth is bounded only by the goroutine stack unless
// MaxDepth is given.
//
//	node, err := parse.ParseString("d3:agei25e4:name4:Johne")
//
// Errors are *token.SyntaxError values; test them with errors.Is against a
// token.Kind:
//
//	if errors.Is(err, token.DictKeysOutOfOrder) { ... }
//
// By default bytes after the first complete value are left unread. Use
// NoTrailing to reject them with token.TrailingData.
package parse
