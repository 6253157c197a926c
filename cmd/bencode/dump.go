package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		d, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
