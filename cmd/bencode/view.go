package main

import (
	"fmt"
	"io"

	"github.com/clockworkengineer/bencode-sub000/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := viewFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", displayName(file), err)
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	return encode.View(doc, cc.Out, cfg.viewOpts(cc.Out)...)
}
