package main

import (
	"fmt"
	"io"

	"github.com/clockworkengineer/bencode-sub000/export"
	"github.com/clockworkengineer/bencode-sub000/format"
	"github.com/clockworkengineer/bencode-sub000/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	f := cfg.outFormat(format.JSONFormat)
	var opts []export.Option
	if cfg.Indent > 0 {
		opts = append(opts, export.Indent(cfg.Indent))
	}
	for _, file := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		if err := exportDoc(cc.Out, doc, f, opts...); err != nil {
			return fmt.Errorf("error converting %s: %w", displayName(file), err)
		}
	}
	return nil
}

// exportDoc writes doc in format f. Text formats are newline terminated.
func exportDoc(w io.Writer, doc *ir.Node, f format.Format, opts ...export.Option) error {
	cw := &lastByteWriter{w: w}
	if err := export.Export(doc, cw, f, opts...); err != nil {
		return err
	}
	if f.IsBinary() || cw.last == '\n' {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type lastByteWriter struct {
	w    io.Writer
	last byte
}

func (lw *lastByteWriter) Write(p []byte) (int, error) {
	n, err := lw.w.Write(p)
	if n > 0 {
		lw.last = p[n-1]
	}
	return n, err
}
