package main

import (
	"bytes"
	"fmt"

	bencode "github.com/clockworkengineer/bencode-sub000"

	"github.com/scott-cotton/cli"
)

// canon writes the canonical encoding of each input. With -c it only
// reports inputs whose bytes differ from their canonical encoding, with
// -w it rewrites those files.
func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Check {
		return fmt.Errorf("%w: only one of -w, -c may be specified", cli.ErrUsage)
	}
	files := inputs(args)
	notCanon := 0
	for _, file := range files {
		if cfg.Write && file == "-" {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		raw, err := readRaw(cc, file)
		if err != nil {
			return err
		}
		doc, err := bencode.Decode(raw, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		out := bencode.Marshal(doc)
		same := bytes.Equal(raw, out)
		switch {
		case cfg.Check:
			if !same {
				notCanon++
				fmt.Fprintln(cc.Out, displayName(file))
			}
		case cfg.Write:
			if same {
				continue
			}
			if err := bencode.WriteFile(file, doc); err != nil {
				return fmt.Errorf("error writing %s: %w", file, err)
			}
			theLog.Info("rewrote", "file", file)
		default:
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		}
	}
	if notCanon != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
