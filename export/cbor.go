package export

import (
	"io"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// encMode writes deterministic CBOR: sorted map keys, shortest integer
// forms, definite lengths.
var encMode cbor.EncMode

func init() {
	var err error
	encOptions := cbor.CoreDetEncOptions()
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// CBOR writes node as a single CBOR data item. Byte strings that are
// valid UTF-8 become text strings and the rest become byte strings.
func CBOR(node *ir.Node, w io.Writer, opts ...Option) error {
	d, err := encMode.Marshal(cborValue(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func cborValue(node *ir.Node) any {
	if node.IsNone() {
		return nil
	}
	switch node.Type {
	case ir.IntegerType:
		return node.Int64
	case ir.StringType:
		return cborString(node.String)
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = cborValue(v)
		}
		return res
	case ir.DictionaryType:
		res := make(map[any]any, len(node.Fields))
		for i, f := range node.Fields {
			res[cborString(f.String)] = cborValue(node.Values[i])
		}
		return res
	}
	return nil
}

func cborString(s string) any {
	if utf8.ValidString(s) {
		return s
	}
	return cbor.ByteString(s)
}
