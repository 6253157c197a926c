package main

import (
	"fmt"
	"io"
	"os"

	bencode "github.com/clockworkengineer/bencode-sub000"
	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/format"
	"github.com/clockworkengineer/bencode-sub000/metainfo"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='view with color'"`
	Strict     bool `cli:"name=strict desc='reject leading zeros in integers and lengths'"`
	Depth      int  `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	NoTrailing bool `cli:"name=notrail desc='reject bytes after the first value'"`

	Parser    bencode.Parser
	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parserOpt(_ *cli.Context, v string) (any, error) {
	p, err := bencode.ParseParser(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Parser = p
	return p, nil
}

func (cfg *MainConfig) decodeOpts() []bencode.DecodeOption {
	res := []bencode.DecodeOption{
		bencode.WithParser(cfg.Parser),
		bencode.MaxDepth(cfg.Depth),
	}
	if cfg.Strict {
		res = append(res, bencode.Strict())
	}
	if cfg.NoTrailing {
		res = append(res, bencode.NoTrailing())
	}
	return res
}

// useColor reports whether output to w is colored: -color decides when
// given, otherwise color is used on terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) viewOpts(w io.Writer) []encode.ViewOption {
	if cfg.useColor(w) {
		return []encode.ViewOption{encode.ViewColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	Truncate int  `cli:"name=t desc='elide strings longer than n bytes'"`
	Indent   int  `cli:"name=indent desc='spaces per nesting level'"`
	Inline   bool `cli:"name=inline desc='one line per document'"`

	View *cli.Command
}

func (cfg *ViewConfig) viewOpts(w io.Writer) []encode.ViewOption {
	res := cfg.MainConfig.viewOpts(w)
	if cfg.Truncate > 0 {
		res = append(res, encode.ViewTruncate(cfg.Truncate))
	}
	if cfg.Indent > 0 {
		res = append(res, encode.ViewIndent(cfg.Indent))
	}
	if cfg.Inline {
		res = append(res, encode.ViewInline())
	}
	return res
}

type ValidateConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report invalid files'"`

	Validate *cli.Command
}

type CanonConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place'"`
	Check bool `cli:"name=c desc='only check that files are canonical'"`

	Canon *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='spaces per nesting level'"`

	Convert *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Files bool `cli:"name=f desc='list the files of multi file torrents'"`

	Info *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
	Expr   bool `cli:"name=e desc='consider match a boolean expression'"`
	Names  bool `cli:"name=l desc='list names of matching files'"`
}

type HashConfig struct {
	*MainConfig

	Algorithm metainfo.Algorithm
	InfoOnly  bool `cli:"name=info desc='hash only the info dictionary'"`

	Hash *cli.Command
}

func (cfg *HashConfig) algOpt(_ *cli.Context, v string) (any, error) {
	a, err := metainfo.ParseAlgorithm(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Algorithm = a
	return a, nil
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

// outFormat is the -O format, or def when none was given.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat == nil {
		return def
	}
	return *cfg.OutFormat
}
