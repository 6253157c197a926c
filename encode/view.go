package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

type viewState struct {
	depth, indent int
	truncate      int
	inline        bool
	Color         func(ir.Type, ColorAttr, string) string
}

// View writes an indented, human-readable rendering of node to w followed by
// a newline. Byte strings are quoted with Go escapes; dictionary keys that
// are plain words are written bare.
func View(node *ir.Node, w io.Writer, opts ...ViewOption) error {
	vs := &viewState{indent: 2}
	for _, opt := range opts {
		opt(vs)
	}
	bw := bufio.NewWriter(w)
	vs.node(bw, node)
	bw.WriteByte('\n')
	return bw.Flush()
}

// ViewString renders node without color.
func ViewString(node *ir.Node, opts ...ViewOption) string {
	buf := &strings.Builder{}
	View(node, buf, opts...)
	return strings.TrimSuffix(buf.String(), "\n")
}

func (vs *viewState) color(t ir.Type, a ColorAttr, s string) string {
	if vs.Color == nil {
		return s
	}
	return vs.Color(t, a, s)
}

// nl starts the i'th element of a container, or closes it when i < 0.
func (vs *viewState) nl(w *bufio.Writer, i int) {
	if vs.inline {
		if i > 0 {
			w.WriteString(", ")
		}
		return
	}
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(" ", vs.indent*vs.depth))
}

func (vs *viewState) node(w *bufio.Writer, node *ir.Node) {
	if node == nil {
		w.WriteString(vs.color(ir.NoneType, ValueColor, "none"))
		return
	}
	switch node.Type {
	case ir.NoneType:
		w.WriteString(vs.color(ir.NoneType, ValueColor, "none"))
	case ir.IntegerType:
		w.WriteString(vs.color(ir.IntegerType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.StringType:
		if vs.truncate > 0 && len(node.String) > vs.truncate {
			w.WriteString(vs.color(ir.StringType, ElidedColor, fmt.Sprintf("<%d bytes>", len(node.String))))
			return
		}
		w.WriteString(vs.color(ir.StringType, ValueColor, strconv.Quote(node.String)))
	case ir.ListType:
		if len(node.Values) == 0 {
			w.WriteString(vs.color(ir.ListType, SepColor, "[]"))
			return
		}
		w.WriteString(vs.color(ir.ListType, SepColor, "["))
		vs.depth++
		for i, v := range node.Values {
			vs.nl(w, i)
			vs.node(w, v)
		}
		vs.depth--
		vs.nl(w, -1)
		w.WriteString(vs.color(ir.ListType, SepColor, "]"))
	case ir.DictionaryType:
		if len(node.Values) == 0 {
			w.WriteString(vs.color(ir.DictionaryType, SepColor, "{}"))
			return
		}
		w.WriteString(vs.color(ir.DictionaryType, SepColor, "{"))
		vs.depth++
		for i, kv := range node.Sorted() {
			vs.nl(w, i)
			w.WriteString(vs.color(ir.DictionaryType, FieldColor, viewKey(kv.Key.String)))
			w.WriteString(vs.color(ir.DictionaryType, SepColor, ":"))
			w.WriteByte(' ')
			vs.node(w, kv.Val)
		}
		vs.depth--
		vs.nl(w, -1)
		w.WriteString(vs.color(ir.DictionaryType, SepColor, "}"))
	}
}

func viewKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.':
		default:
			return strconv.Quote(k)
		}
	}
	return k
}
