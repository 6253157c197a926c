package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
)

// Logf writes a formatted message to stderr. *ir.Node arguments are
// rendered in the tree view and plain Go containers as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.ViewString(x)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
