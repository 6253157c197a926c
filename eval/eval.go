package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/clockworkengineer/bencode-sub000/debug"
	"github.com/clockworkengineer/bencode-sub000/ir"
)

type Env map[string]any

// NewEnv binds doc for evaluation.
func NewEnv(doc *ir.Node) Env {
	return Env{"doc": ir.ToAny(doc)}
}

// Eval runs script against doc and converts the result back to a node.
// Booleans become 0 or 1 and nil becomes None.
func Eval(script string, doc *ir.Node) (*ir.Node, error) {
	env := NewEnv(doc)
	opts := append([]expr.Option{expr.Env(env)}, exprOpts(doc)...)
	prg, err := expr.Compile(script, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q: %v\n", script, res)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("result of %q: %w", script, err)
	}
	return node, nil
}

// Match reports whether script evaluates to true against doc.
func Match(script string, doc *ir.Node) (bool, error) {
	env := NewEnv(doc)
	opts := append([]expr.Option{expr.Env(env), expr.AsBool()}, exprOpts(doc)...)
	prg, err := expr.Compile(script, opts...)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}
