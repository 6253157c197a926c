package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// TOML writes node as a TOML document. The root must be a dictionary and
// every list must hold values of a single type. Dictionary entries whose
// value is None are left out; None inside a list is an error.
func TOML(node *ir.Node, w io.Writer, opts ...Option) error {
	o := newOpts(opts)
	if !node.IsDictionary() {
		return ErrTOMLRoot
	}
	v, err := tomlTable(node, "")
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.Indent = strings.Repeat(" ", o.indent)
	return enc.Encode(v)
}

func tomlTable(node *ir.Node, path string) (map[string]any, error) {
	res := make(map[string]any, len(node.Fields))
	for i, f := range node.Fields {
		v := node.Values[i]
		if v.IsNone() {
			continue
		}
		key := text(f.String)
		if _, ok := res[key]; ok {
			return nil, fmt.Errorf("%w: %q at %s", ErrTOMLDuplicateKey, key, tomlPath(path, key))
		}
		tv, err := tomlValue(v, tomlPath(path, key))
		if err != nil {
			return nil, err
		}
		res[key] = tv
	}
	return res, nil
}

func tomlValue(node *ir.Node, path string) (any, error) {
	switch node.Type {
	case ir.IntegerType:
		return node.Int64, nil
	case ir.StringType:
		return text(node.String), nil
	case ir.DictionaryType:
		return tomlTable(node, path)
	case ir.ListType:
		return tomlArray(node, path)
	}
	return nil, fmt.Errorf("%w at %s", ErrTOMLNone, path)
}

func tomlArray(node *ir.Node, path string) (any, error) {
	var first ir.Type
	for i, v := range node.Values {
		if v.IsNone() {
			return nil, fmt.Errorf("%w at %s[%d]", ErrTOMLNone, path, i)
		}
		if i == 0 {
			first = v.Type
			continue
		}
		if v.Type != first {
			return nil, fmt.Errorf("%w at %s: %s and %s", ErrTOMLMixedList, path, first, v.Type)
		}
	}
	if first == ir.DictionaryType {
		res := make([]map[string]any, len(node.Values))
		for i, v := range node.Values {
			t, err := tomlTable(v, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res[i] = t
		}
		return res, nil
	}
	res := make([]any, len(node.Values))
	for i, v := range node.Values {
		tv, err := tomlValue(v, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		res[i] = tv
	}
	return res, nil
}

func tomlPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
