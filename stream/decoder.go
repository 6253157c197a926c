package stream

import (
	"io"

	"github.com/clockworkengineer/bencode-sub000/debug"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

// state is what the decoder expects next within a frame.
type state uint8

const (
	parseValue state = iota
	inList
	inDictKey
	inDictValue
)

func (s state) String() string {
	switch s {
	case parseValue:
		return "ParseValue"
	case inList:
		return "InList"
	case inDictKey:
		return "InDictKey"
	case inDictValue:
		return "InDictValue"
	}
	return "?"
}

type frame struct {
	state   state
	start   int
	last    string
	hasLast bool
}

// Decoder reads bencode values from a token.Source without recursion.
type Decoder struct {
	src    token.Source
	opts   *streamOpts
	work   []frame
	depth  int
	values int
	buf    []byte
	err    error
}

// NewDecoder creates a new Decoder reading from src.
func NewDecoder(src token.Source, opts ...StreamOption) *Decoder {
	return &Decoder{src: src, opts: newOpts(opts)}
}

// Depth returns the number of open containers.
func (d *Decoder) Depth() int {
	return d.depth
}

func (d *Decoder) fail(err error) error {
	if serr := token.SourceErr(d.src); serr != nil {
		err = serr
	}
	d.err = err
	if debug.Stream() {
		debug.Logf("stream: %v (work stack %d)\n", err, len(d.work))
	}
	return err
}

func (d *Decoder) errAt(k token.Kind, off int) error {
	return d.fail(token.ErrorAt(k, d.src, off))
}

// ReadEvent returns the next structural event. Between top-level values it
// returns io.EOF when the input is exhausted, except for an empty input which
// is token.EmptyInput. After an error every call returns the same error.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len(d.work) == 0 {
		if !d.src.More() {
			if d.values == 0 {
				return nil, d.errAt(token.EmptyInput, d.src.Offset())
			}
			if serr := token.SourceErr(d.src); serr != nil {
				return nil, d.fail(serr)
			}
			return nil, io.EOF
		}
		if d.values > 0 && d.opts.noTrailing {
			return nil, d.errAt(token.TrailingData, d.src.Offset())
		}
		d.work = append(d.work, frame{state: parseValue})
	}
	for {
		top := &d.work[len(d.work)-1]
		c, ok := d.src.Current()
		off := d.src.Offset()
		switch top.state {
		case parseValue:
			d.work = d.work[:len(d.work)-1]
			return d.value(c, off)

		case inList:
			if !ok {
				return nil, d.errAt(token.UnterminatedList, top.start)
			}
			if c == token.End {
				d.src.Next()
				return d.end(EventEndList, off), nil
			}
			d.work = append(d.work, frame{state: parseValue})

		case inDictKey:
			if !ok {
				return nil, d.errAt(token.UnterminatedDictionary, top.start)
			}
			if c == token.End {
				d.src.Next()
				return d.end(EventEndDictionary, off), nil
			}
			if !token.IsDigit(c) {
				return nil, d.errAt(token.DictKeyMustBeString, off)
			}
			key, err := d.bytes()
			if err != nil {
				return nil, err
			}
			if top.hasLast && key <= top.last {
				return nil, d.errAt(token.DictKeysOutOfOrder, off)
			}
			top.last, top.hasLast = key, true
			top.state = inDictValue
			return &Event{Type: EventKey, Key: key, Offset: off}, nil

		case inDictValue:
			if !ok {
				return nil, d.errAt(token.UnterminatedDictionary, top.start)
			}
			top.state = inDictKey
			d.work = append(d.work, frame{state: parseValue})
		}
	}
}

// end pops a finished container.
func (d *Decoder) end(t EventType, off int) *Event {
	d.work = d.work[:len(d.work)-1]
	d.depth--
	if len(d.work) == 0 {
		d.values++
	}
	return &Event{Type: t, Offset: off}
}

func (d *Decoder) open(s state, off int) error {
	d.depth++
	if d.opts.maxDepth > 0 && d.depth > d.opts.maxDepth {
		return d.errAt(token.MaxDepthExceeded, off)
	}
	d.work = append(d.work, frame{state: s, start: off})
	return nil
}

// value starts the value under the cursor. The caller has checked that the
// source is not exhausted.
func (d *Decoder) value(c byte, off int) (*Event, error) {
	var ev *Event
	switch {
	case c == token.IntegerStart:
		v, err := d.integer()
		if err != nil {
			return nil, err
		}
		ev = &Event{Type: EventInt, Int: v, Offset: off}
	case token.IsDigit(c), c == token.LengthSep:
		s, err := d.bytes()
		if err != nil {
			return nil, err
		}
		ev = &Event{Type: EventString, String: s, Offset: off}
	case c == token.ListStart:
		if err := d.open(inList, off); err != nil {
			return nil, err
		}
		d.src.Next()
		return &Event{Type: EventBeginList, Offset: off}, nil
	case c == token.DictionaryStart:
		if err := d.open(inDictKey, off); err != nil {
			return nil, err
		}
		d.src.Next()
		return &Event{Type: EventBeginDictionary, Offset: off}, nil
	default:
		return nil, d.fail(token.UnexpectedAt(c, d.src, off))
	}
	if len(d.work) == 0 {
		d.values++
	}
	return ev, nil
}

func (d *Decoder) integer() (int64, error) {
	start := d.src.Offset()
	d.src.Next()
	d.buf = d.buf[:0]
	for {
		c, ok := d.src.Current()
		if !ok {
			return 0, d.errAt(token.UnterminatedInteger, start)
		}
		d.src.Next()
		if c == token.End {
			break
		}
		d.buf = append(d.buf, c)
	}
	v, ok := token.ParseInt(d.buf, d.opts.strict)
	if !ok {
		return 0, d.errAt(token.InvalidInteger, start)
	}
	return v, nil
}

func (d *Decoder) bytes() (string, error) {
	start := d.src.Offset()
	d.buf = d.buf[:0]
	for {
		c, ok := d.src.Current()
		if !ok {
			return "", d.errAt(token.InvalidStringLength, start)
		}
		d.src.Next()
		if c == token.LengthSep {
			break
		}
		if !token.IsDigit(c) {
			return "", d.errAt(token.InvalidStringLength, d.src.Offset()-1)
		}
		d.buf = append(d.buf, c)
	}
	n, ok := token.ParseLength(d.buf, d.opts.strict)
	if !ok {
		return "", d.errAt(token.InvalidStringLength, start)
	}
	if b, ok := d.src.(*token.BufferSource); ok {
		rest := b.Bytes()
		if len(rest) < n {
			return "", d.errAt(token.StringTooShort, start)
		}
		b.Skip(n)
		return string(rest[:n]), nil
	}
	res := make([]byte, 0, min(n, 4096))
	for range n {
		c, ok := d.src.Current()
		if !ok {
			return "", d.errAt(token.StringTooShort, start)
		}
		res = append(res, c)
		d.src.Next()
	}
	return string(res), nil
}

// Decode reads the next top-level value. It returns io.EOF when no values
// remain.
func (d *Decoder) Decode() (*ir.Node, error) {
	b := &builder{}
	for {
		ev, err := d.ReadEvent()
		if err != nil {
			return nil, err
		}
		done, err := b.add(ev)
		if err != nil {
			return nil, d.fail(err)
		}
		if done {
			return b.root, nil
		}
	}
}

// Parse decodes a single value from src.
func Parse(src token.Source, opts ...StreamOption) (*ir.Node, error) {
	d := NewDecoder(src, opts...)
	node, err := d.Decode()
	if err != nil {
		return nil, err
	}
	if d.opts.noTrailing && src.More() {
		return nil, d.errAt(token.TrailingData, src.Offset())
	}
	if debug.Stream() {
		debug.Logf("stream: %d bytes\n%v\n", src.Offset(), node)
	}
	return node, nil
}

func ParseBytes(data []byte, opts ...StreamOption) (*ir.Node, error) {
	return Parse(token.NewBufferSource(data), opts...)
}

func ParseString(s string, opts ...StreamOption) (*ir.Node, error) {
	return Parse(token.NewStringSource(s), opts...)
}

// ParseFile parses the file at path, decompressing it if needed.
func ParseFile(path string, opts ...StreamOption) (*ir.Node, error) {
	src, err := token.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return Parse(src, opts...)
}
