package main

import (
	"fmt"
	"io"

	bencode "github.com/clockworkengineer/bencode-sub000"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"

	"github.com/scott-cotton/cli"
)

// readRaw returns the bytes of file, with "-" naming standard input.
func readRaw(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	return token.ReadFile(file)
}

func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	if file == "-" {
		d, err := readRaw(cc, file)
		if err != nil {
			return nil, err
		}
		return bencode.Decode(d, cfg.decodeOpts()...)
	}
	return bencode.ReadFile(file, cfg.decodeOpts()...)
}

// inputs is args, or standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func displayName(file string) string {
	if file == "-" {
		return "<stdin>"
	}
	return file
}
