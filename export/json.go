package export

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// JSON writes node as JSON. Dictionary keys are written in canonical
// order and None is written as null.
func JSON(node *ir.Node, w io.Writer, opts ...Option) error {
	o := newOpts(opts)
	buf := &strings.Builder{}
	writeJSON(buf, node)
	if o.indent <= 0 {
		_, err := io.WriteString(w, buf.String())
		return err
	}
	out := &bytes.Buffer{}
	if err := json.Indent(out, []byte(buf.String()), "", strings.Repeat(" ", o.indent)); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func writeJSON(w *strings.Builder, node *ir.Node) {
	if node.IsNone() {
		w.WriteString("null")
		return
	}
	switch node.Type {
	case ir.IntegerType:
		w.WriteString(strconv.FormatInt(node.Int64, 10))
	case ir.StringType:
		writeQuoted(w, node.String)
	case ir.ListType:
		w.WriteByte('[')
		for i, v := range node.Values {
			if i != 0 {
				w.WriteByte(',')
			}
			writeJSON(w, v)
		}
		w.WriteByte(']')
	case ir.DictionaryType:
		w.WriteByte('{')
		for i, kv := range node.Sorted() {
			if i != 0 {
				w.WriteByte(',')
			}
			writeQuoted(w, kv.Key.String)
			w.WriteByte(':')
			writeJSON(w, kv.Val)
		}
		w.WriteByte('}')
	}
}
