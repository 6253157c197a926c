package eval

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/metainfo"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			node, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			switch {
			case node.IsList():
				res := make([]any, len(node.Values))
				for i, v := range node.Values {
					res[i] = ir.ToAny(v)
				}
				return res, nil
			case node.IsDictionary():
				res := make([]any, len(node.Fields))
				for i, f := range node.Keys() {
					res[i] = f
				}
				return res, nil
			}
			return []any{}, nil
		},
			new(func(string) []any)),
		expr.Function("hex", func(params ...any) (any, error) {
			return hex.EncodeToString([]byte(params[0].(string))), nil
		},
			new(func(string) string)),
		expr.Function("infohash", func(params ...any) (any, error) {
			info, err := doc.RequiredDictionary("info")
			if err != nil {
				return nil, fmt.Errorf("infohash: %w", err)
			}
			d, err := metainfo.Digest(info, metainfo.SHA1)
			if err != nil {
				return nil, err
			}
			return hex.EncodeToString(d), nil
		},
			new(func() string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
