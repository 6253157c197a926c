package main

import (
	"fmt"

	bencode "github.com/clockworkengineer/bencode-sub000"
	"github.com/clockworkengineer/bencode-sub000/token"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range inputs(args) {
		name := displayName(file)
		if err := validateFile(cfg, cc, file); err != nil {
			bad++
			k := token.KindOf(err)
			theLog.Error("invalid", "file", name, "kind", k, "code", k.Code(), "err", err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func validateFile(cfg *ValidateConfig, cc *cli.Context, file string) error {
	d, err := readRaw(cc, file)
	if err != nil {
		return err
	}
	if cfg.Parser == bencode.BorrowedParser {
		return bencode.Validate(d, cfg.decodeOpts()...)
	}
	_, err = bencode.Decode(d, cfg.decodeOpts()...)
	return err
}
