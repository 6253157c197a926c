package export

import (
	"fmt"
	"io"

	"github.com/clockworkengineer/bencode-sub000/debug"
	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/format"
	"github.com/clockworkengineer/bencode-sub000/ir"
)

// Func writes a node in one format.
type Func func(node *ir.Node, w io.Writer, opts ...Option) error

// For returns the writer for f.
func For(f format.Format) (Func, error) {
	switch f {
	case format.BencodeFormat:
		return bencode, nil
	case format.JSONFormat:
		return JSON, nil
	case format.YAMLFormat:
		return YAML, nil
	case format.XMLFormat:
		return XML, nil
	case format.TOMLFormat:
		return TOML, nil
	case format.CBORFormat:
		return CBOR, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// Export writes node to w in format f.
func Export(node *ir.Node, w io.Writer, f format.Format, opts ...Option) error {
	fn, err := For(f)
	if err != nil {
		return err
	}
	if debug.Export() {
		debug.Logf("export %s %s\n", f, node)
	}
	return fn(node, w, opts...)
}

func bencode(node *ir.Node, w io.Writer, _ ...Option) error {
	return encode.EncodeTo(node, w)
}
