package encode

import (
	"io"
	"strconv"

	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

// Encode appends the canonical encoding of node to sink.
func Encode(node *ir.Node, sink token.Sink) {
	var scratch [20]byte
	encode(node, sink, scratch[:0])
}

func encode(node *ir.Node, sink token.Sink, scratch []byte) {
	if node == nil {
		return
	}
	switch node.Type {
	case ir.IntegerType:
		sink.AddByte(token.IntegerStart)
		sink.AddBytes(strconv.AppendInt(scratch, node.Int64, 10))
		sink.AddByte(token.End)
	case ir.StringType:
		writeBytes(node.String, sink, scratch)
	case ir.ListType:
		sink.AddByte(token.ListStart)
		for _, v := range node.Values {
			encode(v, sink, scratch)
		}
		sink.AddByte(token.End)
	case ir.DictionaryType:
		sink.AddByte(token.DictionaryStart)
		for _, kv := range node.Sorted() {
			if kv.Val.IsNone() {
				continue
			}
			writeBytes(kv.Key.String, sink, scratch)
			encode(kv.Val, sink, scratch)
		}
		sink.AddByte(token.End)
	}
}

func writeBytes(s string, sink token.Sink, scratch []byte) {
	sink.AddBytes(strconv.AppendInt(scratch, int64(len(s)), 10))
	sink.AddByte(token.LengthSep)
	sink.AddString(s)
}

// Bytes returns the canonical encoding of node.
func Bytes(node *ir.Node) []byte {
	sink := token.NewBufferSink()
	Encode(node, sink)
	return sink.Bytes()
}

// EncodeTo writes the canonical encoding of node to w.
func EncodeTo(node *ir.Node, w io.Writer) error {
	_, err := w.Write(Bytes(node))
	return err
}

// EncodeFile writes the canonical encoding of node to path, compressing
// according to its suffix.
func EncodeFile(node *ir.Node, path string) error {
	sink, err := token.CreateFile(path)
	if err != nil {
		return err
	}
	Encode(node, sink)
	return sink.Close()
}
