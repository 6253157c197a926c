package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"parser"},
			Description: "parser: recursive, iterative, borrowed",
			Type:        cli.NamedFuncOpt(cfg.parserOpt, "(parser)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: bencode/b, json/j, yaml/y, xml/x, toml/t, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bencode").
		WithSynopsis("bencode [opts] command [opts]").
		WithDescription("bencode is a tool for working with bencoded documents such as .torrent files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bencodeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ValidateCommand(cfg),
			CanonCommand(cfg),
			ConvertCommand(cfg),
			InfoCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			MatchCommand(cfg),
			HashCommand(cfg),
			DumpCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view bencoded documents, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("val").
		WithOpts(opts...).
		WithSynopsis("validate [-q] [files]").
		WithDescription("check that files hold exactly one well formed value").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Canon, "canon").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("canon [-w | -c] [files]").
		WithDescription("re-encode documents canonically, with dictionary keys sorted").
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("conv").
		WithOpts(opts...).
		WithSynopsis("convert [-indent n] [files]").
		WithDescription("convert documents to the format given by -O (default json)").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithOpts(opts...).
		WithSynopsis("info [-f] [torrent files]").
		WithDescription("summarize torrent metainfo").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("list the structural differences between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression against each document.

The document is bound to doc: integers, strings, lists and dictionaries
map to numbers, strings, arrays and maps of the expression language.

Functions
  getpath(path)   the value at path, such as $.info["piece length"]
  listpath(path)  the elements of a list or the keys of a dictionary
  hex(s)          s in hexadecimal
  infohash()      the hex SHA-1 of the canonical info dictionary
  getenv(name)    an environment variable

Results are printed as documents; true and false become 1 and 0.`

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <match> [files]").
		WithDescription("print documents containing a match document or satisfying an expression (-e)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "a",
		Description: "digest algorithm: sha1, sha256, blake3",
		Type:        cli.NamedFuncOpt(cfg.algOpt, "(algorithm)"),
	})
	return cli.NewCommandAt(&cfg.Hash, "hash").
		WithAliases("h").
		WithOpts(opts...).
		WithSynopsis("hash [-a alg] [-info] [files]").
		WithDescription("digest the canonical encoding of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump IR as JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
