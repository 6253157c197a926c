package main

import (
	"fmt"
	"io"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one side may be stdin", cli.ErrUsage)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[0]), err)
	}
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", displayName(args[1]), err)
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := writeChanges(cc.Out, changes, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change, useColor bool) error {
	var (
		dmp   = diffpatch.New()
		marks = map[libdiff.Op]func(a ...any) string{}
	)
	for _, op := range []libdiff.Op{libdiff.Insert, libdiff.Delete, libdiff.Replace} {
		marks[op] = fmt.Sprint
	}
	if useColor {
		marks[libdiff.Insert] = color.New(color.FgGreen).Sprint
		marks[libdiff.Delete] = color.New(color.FgRed).Sprint
		marks[libdiff.Replace] = color.New(color.FgYellow).Sprint
	}
	for i := range changes {
		c := &changes[i]
		var line string
		switch {
		case c.Op == libdiff.Insert:
			line = inline(c.To)
		case c.Op == libdiff.Delete:
			line = inline(c.From)
		case c.Text != nil && useColor:
			line = `"` + dmp.DiffPrettyText(c.Text) + `"`
		default:
			line = inline(c.From) + " -> " + inline(c.To)
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n", marks[c.Op](c.Op.Symbol()), c.Path, line)
		if err != nil {
			return err
		}
	}
	return nil
}

func inline(n *ir.Node) string {
	return encode.ViewString(n, encode.ViewInline())
}
