// Package format names the document formats a bencode tree can be
// written as.
package format
