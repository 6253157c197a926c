package encode

import (
	"github.com/clockworkengineer/bencode-sub000/ir"
)

// MustString returns the canonical encoding of node as a string.
func MustString(node *ir.Node) string {
	return string(Bytes(node))
}
