package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/clockworkengineer/bencode-sub000/metainfo"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", displayName(file), err)
		}
		mi, err := metainfo.Read(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(file), err)
		}
		writeInfo(cfg, cc.Out, mi)
	}
	return nil
}

func writeInfo(cfg *InfoConfig, w io.Writer, mi *metainfo.MetaInfo) {
	label := fmt.Sprint
	if cfg.useColor(w) {
		label = color.New(color.FgCyan).Sprint
	}
	row := func(k string, v any) {
		fmt.Fprintf(w, "%s %v\n", label(fmt.Sprintf("%-13s", k+":")), v)
	}
	h := mi.InfoHash()
	row("name", mi.Info.Name)
	row("info hash", hex.EncodeToString(h[:]))
	for _, t := range mi.Trackers() {
		row("tracker", t)
	}
	if mi.Comment != "" {
		row("comment", mi.Comment)
	}
	if mi.CreatedBy != "" {
		row("created by", mi.CreatedBy)
	}
	if !mi.CreationDate.IsZero() {
		row("created", mi.CreationDate.UTC().Format(time.RFC3339))
	}
	if mi.Info.Private {
		row("private", "yes")
	}
	if mi.Info.Source != "" {
		row("source", mi.Info.Source)
	}
	row("piece length", mi.Info.PieceLength)
	row("pieces", mi.Info.NumPieces())
	row("total length", mi.TotalLength())
	if len(mi.Info.Files) == 0 {
		return
	}
	row("files", len(mi.Info.Files))
	if !cfg.Files {
		return
	}
	for _, f := range mi.Info.Files {
		fmt.Fprintf(w, "  %12d %s\n", f.Length, f.Name())
	}
}
