package parse

import (
	"github.com/clockworkengineer/bencode-sub000/debug"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

type parser struct {
	src   token.Source
	opts  *parseOpts
	depth int
	buf   []byte
}

func Parse(src token.Source, opts ...ParseOption) (*ir.Node, error) {
	p := &parser{src: src, opts: newOpts(opts)}
	node, err := p.top()
	if err != nil {
		if serr := token.SourceErr(src); serr != nil {
			err = serr
		}
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes\n%v\n", src.Offset(), node)
	}
	return node, nil
}

func ParseBytes(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return Parse(token.NewBufferSource(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse(token.NewStringSource(s), opts...)
}

// ParseFile parses the file at path. Compressed files are decompressed
// transparently.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	src, err := token.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return Parse(src, opts...)
}

func (p *parser) top() (*ir.Node, error) {
	if !p.src.More() {
		return nil, token.ErrorAt(token.EmptyInput, p.src, p.src.Offset())
	}
	node, err := p.value()
	if err != nil {
		return nil, err
	}
	if p.opts.noTrailing && p.src.More() {
		return nil, token.ErrorAt(token.TrailingData, p.src, p.src.Offset())
	}
	return node, nil
}

// value parses the value under the cursor. The caller has checked that the
// source is not exhausted.
func (p *parser) value() (*ir.Node, error) {
	c, _ := p.src.Current()
	switch {
	case c == token.IntegerStart:
		return p.integer()
	case token.IsDigit(c), c == token.LengthSep:
		s, err := p.bytes()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case c == token.ListStart:
		return p.list()
	case c == token.DictionaryStart:
		return p.dictionary()
	}
	return nil, token.UnexpectedAt(c, p.src, p.src.Offset())
}

func (p *parser) integer() (*ir.Node, error) {
	start := p.src.Offset()
	p.src.Next()
	p.buf = p.buf[:0]
	for {
		c, ok := p.src.Current()
		if !ok {
			return nil, token.ErrorAt(token.UnterminatedInteger, p.src, start)
		}
		p.src.Next()
		if c == token.End {
			break
		}
		p.buf = append(p.buf, c)
	}
	v, ok := token.ParseInt(p.buf, p.opts.strict)
	if !ok {
		return nil, token.ErrorAt(token.InvalidInteger, p.src, start)
	}
	return ir.FromInt(v), nil
}

func (p *parser) bytes() (string, error) {
	start := p.src.Offset()
	p.buf = p.buf[:0]
	for {
		c, ok := p.src.Current()
		if !ok {
			return "", token.ErrorAt(token.InvalidStringLength, p.src, start)
		}
		if c == token.LengthSep {
			p.src.Next()
			break
		}
		if !token.IsDigit(c) {
			return "", token.ErrorAt(token.InvalidStringLength, p.src, p.src.Offset())
		}
		p.buf = append(p.buf, c)
		p.src.Next()
	}
	n, ok := token.ParseLength(p.buf, p.opts.strict)
	if !ok {
		return "", token.ErrorAt(token.InvalidStringLength, p.src, start)
	}
	if b, ok := p.src.(*token.BufferSource); ok {
		rest := b.Bytes()
		if len(rest) < n {
			return "", token.ErrorAt(token.StringTooShort, p.src, start)
		}
		s := string(rest[:n])
		b.Skip(n)
		return s, nil
	}
	res := make([]byte, 0, min(n, 4096))
	for range n {
		c, ok := p.src.Current()
		if !ok {
			return "", token.ErrorAt(token.StringTooShort, p.src, start)
		}
		res = append(res, c)
		p.src.Next()
	}
	return string(res), nil
}

func (p *parser) enter(start int) error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return token.ErrorAt(token.MaxDepthExceeded, p.src, start)
	}
	return nil
}

func (p *parser) list() (*ir.Node, error) {
	start := p.src.Offset()
	if err := p.enter(start); err != nil {
		return nil, err
	}
	p.src.Next()
	res := ir.NewList()
	for {
		c, ok := p.src.Current()
		if !ok {
			return nil, token.ErrorAt(token.UnterminatedList, p.src, start)
		}
		if c == token.End {
			p.src.Next()
			break
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
	}
	p.depth--
	return res, nil
}

func (p *parser) dictionary() (*ir.Node, error) {
	start := p.src.Offset()
	if err := p.enter(start); err != nil {
		return nil, err
	}
	p.src.Next()
	res := ir.NewDictionary()
	var last string
	for i := 0; ; i++ {
		c, ok := p.src.Current()
		if !ok {
			return nil, token.ErrorAt(token.UnterminatedDictionary, p.src, start)
		}
		if c == token.End {
			p.src.Next()
			break
		}
		if !token.IsDigit(c) {
			return nil, token.ErrorAt(token.DictKeyMustBeString, p.src, p.src.Offset())
		}
		keyOff := p.src.Offset()
		key, err := p.bytes()
		if err != nil {
			return nil, err
		}
		if i > 0 && key <= last {
			return nil, token.ErrorAt(token.DictKeysOutOfOrder, p.src, keyOff)
		}
		if !p.src.More() {
			return nil, token.ErrorAt(token.UnterminatedDictionary, p.src, start)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, ir.FromString(key))
		res.Values = append(res.Values, v)
		last = key
	}
	p.depth--
	return res, nil
}
