// Package eval evaluates expr-lang expressions against bencode documents.
//
// The document is bound to the variable doc as plain Go values:
// integers are int64, byte strings are strings, lists are []any and
// dictionaries are map[string]any. Paths as produced by ir.FieldPath are
// reachable through getpath and listpath.
package eval
