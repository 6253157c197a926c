package export

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// XML writes node as an XML fragment whose elements are named after the
// bencode types. A dictionary entry is an item holding a key and a value.
// None is written as nothing.
func XML(node *ir.Node, w io.Writer, opts ...Option) error {
	bw := bufio.NewWriter(w)
	if err := writeXML(bw, node); err != nil {
		return err
	}
	return bw.Flush()
}

func writeXML(w *bufio.Writer, node *ir.Node) error {
	if node.IsNone() {
		return nil
	}
	switch node.Type {
	case ir.IntegerType:
		w.WriteString("<integer>")
		w.WriteString(strconv.FormatInt(node.Int64, 10))
		w.WriteString("</integer>")
	case ir.StringType:
		w.WriteString("<string>")
		if err := xmlText(w, node.String); err != nil {
			return err
		}
		w.WriteString("</string>")
	case ir.ListType:
		w.WriteString("<list>")
		for _, v := range node.Values {
			if err := writeXML(w, v); err != nil {
				return err
			}
		}
		w.WriteString("</list>")
	case ir.DictionaryType:
		w.WriteString("<dictionary>")
		for _, kv := range node.Sorted() {
			w.WriteString("<item><key>")
			if err := xmlText(w, kv.Key.String); err != nil {
				return err
			}
			w.WriteString("</key><value>")
			if err := writeXML(w, kv.Val); err != nil {
				return err
			}
			w.WriteString("</value></item>")
		}
		w.WriteString("</dictionary>")
	}
	return nil
}

func xmlText(w *bufio.Writer, s string) error {
	return xml.EscapeText(w, []byte(text(s)))
}
