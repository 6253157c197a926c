package main

import (
	"encoding/hex"
	"fmt"

	"github.com/clockworkengineer/bencode-sub000/metainfo"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		if cfg.InfoOnly {
			if doc, err = doc.RequiredDictionary("info"); err != nil {
				return fmt.Errorf("%s: %w", displayName(file), err)
			}
		}
		sum, err := metainfo.Digest(doc, cfg.Algorithm)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s  %s\n", hex.EncodeToString(sum), displayName(file))
	}
	return nil
}
