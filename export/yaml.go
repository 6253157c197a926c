package export

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// YAML writes node as a YAML document. Dictionaries keep canonical key
// order and None is written as null.
func YAML(node *ir.Node, w io.Writer, opts ...Option) error {
	o := newOpts(opts)
	indent := o.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(yamlValue(node), yaml.Indent(indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) any {
	if node.IsNone() {
		return nil
	}
	switch node.Type {
	case ir.IntegerType:
		return node.Int64
	case ir.StringType:
		return text(node.String)
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlValue(v)
		}
		return res
	case ir.DictionaryType:
		kvs := node.Sorted()
		res := make(yaml.MapSlice, len(kvs))
		for i, kv := range kvs {
			res[i] = yaml.MapItem{Key: text(kv.Key.String), Value: yamlValue(kv.Val)}
		}
		return res
	}
	return nil
}
