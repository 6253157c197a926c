package main

import (
	"fmt"
	"io"

	bencode "github.com/clockworkengineer/bencode-sub000"
	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/eval"
	"github.com/clockworkengineer/bencode-sub000/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	m, err := getMatcher(cfg, cc, args[0])
	if err != nil {
		return err
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		ok, err := m.match(doc)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", displayName(file), err)
		}
		if !ok {
			continue
		}
		if cfg.Names {
			fmt.Fprintln(cc.Out, displayName(file))
			continue
		}
		if n > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		n++
		if cfg.Trim && m.pattern != nil {
			doc = bencode.Trim(m.pattern, doc)
		}
		if err := encode.View(doc, cc.Out, cfg.viewOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

// matcher holds either a pattern document or a boolean expression.
type matcher struct {
	pattern *ir.Node
	script  string
}

func (m *matcher) match(doc *ir.Node) (bool, error) {
	if m.pattern != nil {
		return bencode.Match(doc, m.pattern), nil
	}
	return eval.Match(m.script, doc)
}

func getMatcher(cfg *MatchConfig, cc *cli.Context, arg string) (*matcher, error) {
	n := 0
	for _, b := range []bool{cfg.String, cfg.File, cfg.Expr} {
		if b {
			n++
		}
	}
	if n > 1 {
		return nil, fmt.Errorf("%w: only one of -s, -f, -e may be specified", cli.ErrUsage)
	}
	if cfg.Expr {
		if cfg.Trim {
			return nil, fmt.Errorf("%w: -trim requires a match document", cli.ErrUsage)
		}
		return &matcher{script: arg}, nil
	}
	var (
		pattern *ir.Node
		err     error
	)
	if cfg.File {
		pattern, err = readDoc(cfg.MainConfig, cc, arg)
	} else {
		pattern, err = bencode.Decode([]byte(arg), cfg.decodeOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return &matcher{pattern: pattern}, nil
}
