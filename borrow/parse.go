package borrow

import (
	"bytes"

	"github.com/clockworkengineer/bencode-sub000/debug"
	"github.com/clockworkengineer/bencode-sub000/token"
)

type parser struct {
	d     []byte
	i     int
	depth int
	opts  borrowOpts
	build bool
}

// Parse parses data, which must hold exactly one value, into a tree that
// borrows from data.
func Parse(data []byte, opts ...Option) (Node, error) {
	p := parser{d: data, build: true}
	if len(opts) > 0 {
		p.opts = newOpts(opts)
	}
	n, k := p.top()
	if k != token.NoError {
		if debug.Borrow() {
			debug.Logf("borrow: %s at offset %d\n", k, p.i)
		}
		return Node{}, k
	}
	return n, nil
}

// Validate reports whether data holds exactly one well-formed value. It
// builds nothing and does not allocate.
func Validate(data []byte, opts ...Option) error {
	p := parser{d: data}
	if len(opts) > 0 {
		p.opts = newOpts(opts)
	}
	if _, k := p.top(); k != token.NoError {
		return k
	}
	return nil
}

// ValidateKind is Validate reporting token.NoError on success.
func ValidateKind(data []byte, opts ...Option) token.Kind {
	p := parser{d: data}
	if len(opts) > 0 {
		p.opts = newOpts(opts)
	}
	_, k := p.top()
	return k
}

func (p *parser) top() (Node, token.Kind) {
	if len(p.d) == 0 {
		return Node{}, token.EmptyInput
	}
	n, k := p.value()
	if k != token.NoError {
		return Node{}, k
	}
	if p.i != len(p.d) {
		return Node{}, token.TrailingData
	}
	return n, token.NoError
}

// value parses the value at p.i. The caller has checked p.i is in range.
func (p *parser) value() (Node, token.Kind) {
	c := p.d[p.i]
	switch {
	case c == token.IntegerStart:
		return p.integer()
	case token.IsDigit(c), c == token.LengthSep:
		b, k := p.bytes()
		if k != token.NoError {
			return Node{}, k
		}
		if !p.build {
			return Node{}, token.NoError
		}
		return Node{Type: stringType, Bytes: b}, token.NoError
	case c == token.ListStart:
		return p.list()
	case c == token.DictionaryStart:
		return p.dictionary()
	}
	return Node{}, token.UnexpectedCharacter
}

func (p *parser) integer() (Node, token.Kind) {
	j := bytes.IndexByte(p.d[p.i+1:], token.End)
	if j < 0 {
		p.i = len(p.d)
		return Node{}, token.UnterminatedInteger
	}
	body := p.d[p.i+1 : p.i+1+j]
	v, ok := token.ParseInt(body, p.opts.strict)
	if !ok {
		return Node{}, token.InvalidInteger
	}
	p.i += j + 2
	return Node{Type: integerType, Int: v}, token.NoError
}

func (p *parser) bytes() ([]byte, token.Kind) {
	j := p.i
	for j < len(p.d) && token.IsDigit(p.d[j]) {
		j++
	}
	if j == len(p.d) || p.d[j] != token.LengthSep {
		return nil, token.InvalidStringLength
	}
	n, ok := token.ParseLength(p.d[p.i:j], p.opts.strict)
	if !ok {
		return nil, token.InvalidStringLength
	}
	start := j + 1
	if len(p.d)-start < n {
		return nil, token.StringTooShort
	}
	p.i = start + n
	return p.d[start:p.i:p.i], token.NoError
}

func (p *parser) enter() token.Kind {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return token.MaxDepthExceeded
	}
	return token.NoError
}

func (p *parser) list() (Node, token.Kind) {
	if k := p.enter(); k != token.NoError {
		return Node{}, k
	}
	p.i++
	var items []Node
	for {
		if p.i >= len(p.d) {
			return Node{}, token.UnterminatedList
		}
		if p.d[p.i] == token.End {
			p.i++
			break
		}
		v, k := p.value()
		if k != token.NoError {
			return Node{}, k
		}
		if p.build {
			items = append(items, v)
		}
	}
	p.depth--
	return Node{Type: listType, List: items}, token.NoError
}

func (p *parser) dictionary() (Node, token.Kind) {
	if k := p.enter(); k != token.NoError {
		return Node{}, k
	}
	p.i++
	var entries []Entry
	var last []byte
	for n := 0; ; n++ {
		if p.i >= len(p.d) {
			return Node{}, token.UnterminatedDictionary
		}
		c := p.d[p.i]
		if c == token.End {
			p.i++
			break
		}
		if !token.IsDigit(c) {
			return Node{}, token.DictKeyMustBeString
		}
		key, k := p.bytes()
		if k != token.NoError {
			return Node{}, k
		}
		if n > 0 && bytes.Compare(key, last) <= 0 {
			return Node{}, token.DictKeysOutOfOrder
		}
		last = key
		if p.i >= len(p.d) {
			return Node{}, token.UnterminatedDictionary
		}
		v, k := p.value()
		if k != token.NoError {
			return Node{}, k
		}
		if p.build {
			entries = append(entries, Entry{Key: key, Value: v})
		}
	}
	p.depth--
	return Node{Type: dictionaryType, Entries: entries}, token.NoError
}
