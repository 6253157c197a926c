package bencode

import (
	"errors"
	"fmt"

	"github.com/clockworkengineer/bencode-sub000/borrow"
	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/parse"
	"github.com/clockworkengineer/bencode-sub000/stream"
	"github.com/clockworkengineer/bencode-sub000/token"
)

const Version = "0.1.0"

// Parser selects a decoder implementation.
type Parser int

const (
	RecursiveParser Parser = iota
	IterativeParser
	BorrowedParser
)

var ErrBadParser = errors.New("bad parser")

func ParseParser(v string) (Parser, error) {
	p, ok := map[string]Parser{
		"recursive": RecursiveParser,
		"iterative": IterativeParser,
		"borrowed":  BorrowedParser,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadParser, v)
}

func (p Parser) String() string {
	switch p {
	case RecursiveParser:
		return "recursive"
	case IterativeParser:
		return "iterative"
	case BorrowedParser:
		return "borrowed"
	}
	return fmt.Sprintf("<parser %d>", int(p))
}

func (p Parser) MarshalText() ([]byte, error) {
	if p < RecursiveParser || p > BorrowedParser {
		return nil, fmt.Errorf("%w: %d", ErrBadParser, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Parser) UnmarshalText(d []byte) error {
	pp, err := ParseParser(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

type decodeOpts struct {
	parser     Parser
	strict     bool
	maxDepth   int
	noTrailing bool
}

type DecodeOption func(*decodeOpts)

func WithParser(p Parser) DecodeOption {
	return func(o *decodeOpts) { o.parser = p }
}

// Strict rejects leading zeros in integers and string lengths.
func Strict() DecodeOption {
	return func(o *decodeOpts) { o.strict = true }
}

// MaxDepth bounds container nesting. Zero or less means no bound.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// NoTrailing rejects bytes after the first complete value. The borrowed
// parser always does.
func NoTrailing() DecodeOption {
	return func(o *decodeOpts) { o.noTrailing = true }
}

func newOpts(opts []DecodeOption) *decodeOpts {
	res := &decodeOpts{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func (o *decodeOpts) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if o.strict {
		res = append(res, parse.Strict())
	}
	if o.noTrailing {
		res = append(res, parse.NoTrailing())
	}
	return append(res, parse.MaxDepth(o.maxDepth))
}

func (o *decodeOpts) streamOpts() []stream.StreamOption {
	var res []stream.StreamOption
	if o.strict {
		res = append(res, stream.Strict())
	}
	if o.noTrailing {
		res = append(res, stream.NoTrailing())
	}
	return append(res, stream.MaxDepth(o.maxDepth))
}

func (o *decodeOpts) borrowOpts() []borrow.Option {
	res := []borrow.Option{borrow.MaxDepth(o.maxDepth)}
	if o.strict {
		res = append(res, borrow.Strict())
	}
	return res
}

// Decode parses a single bencode value from data.
func Decode(data []byte, opts ...DecodeOption) (*ir.Node, error) {
	o := newOpts(opts)
	switch o.parser {
	case IterativeParser:
		return stream.ParseBytes(data, o.streamOpts()...)
	case BorrowedParser:
		b, err := borrow.Parse(data, o.borrowOpts()...)
		if err != nil {
			return nil, err
		}
		return b.ToOwned(), nil
	}
	return parse.ParseBytes(data, o.parseOpts()...)
}

// Validate checks that data holds exactly one well formed value without
// building a tree.
func Validate(data []byte, opts ...DecodeOption) error {
	return borrow.Validate(data, newOpts(opts).borrowOpts()...)
}

// ReadFile parses the file at path. Compressed files are decompressed
// transparently.
func ReadFile(path string, opts ...DecodeOption) (*ir.Node, error) {
	o := newOpts(opts)
	switch o.parser {
	case IterativeParser:
		return stream.ParseFile(path, o.streamOpts()...)
	case BorrowedParser:
		d, err := token.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Decode(d, opts...)
	}
	return parse.ParseFile(path, o.parseOpts()...)
}

// WriteFile writes the canonical encoding of node to path, compressing
// when path ends in .zst or .lz4.
func WriteFile(path string, node *ir.Node) error {
	return encode.EncodeFile(node, path)
}

// Marshal returns the canonical encoding of node.
func Marshal(node *ir.Node) []byte {
	return encode.Bytes(node)
}
