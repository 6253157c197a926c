package main

import (
	"fmt"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	script := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		res, err := eval.Eval(script, doc)
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", displayName(file), err)
		}
		if cfg.OutFormat != nil {
			if err := exportDoc(cc.Out, res, *cfg.OutFormat); err != nil {
				return err
			}
			continue
		}
		if err := encode.View(res, cc.Out, cfg.viewOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
