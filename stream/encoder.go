package stream

import (
	"fmt"
	"strconv"

	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

type encFrame struct {
	dict    bool
	hasKey  bool
	last    string
	hasLast bool
}

// Encoder provides explicit stack management for streaming bencode
// encoding. Output is appended to the sink as each call is made.
type Encoder struct {
	sink    token.Sink
	opts    *streamOpts
	stack   []encFrame
	closed  bool
	scratch [20]byte
}

// NewEncoder creates a new Encoder writing to sink.
func NewEncoder(sink token.Sink, opts ...StreamOption) *Encoder {
	return &Encoder{sink: sink, opts: newOpts(opts)}
}

// Depth returns the number of open containers.
func (e *Encoder) Depth() int {
	return len(e.stack)
}

// beginValue checks that a value may be written here.
func (e *Encoder) beginValue() error {
	if e.closed {
		return ErrClosed
	}
	if len(e.stack) == 0 {
		return nil
	}
	top := &e.stack[len(e.stack)-1]
	if top.dict {
		if !top.hasKey {
			return fmt.Errorf("%w: value without key", token.DictKeyMustBeString)
		}
		top.hasKey = false
	}
	return nil
}

func (e *Encoder) BeginList() error {
	return e.begin(false)
}

func (e *Encoder) BeginDictionary() error {
	return e.begin(true)
}

func (e *Encoder) begin(dict bool) error {
	if err := e.beginValue(); err != nil {
		return err
	}
	if e.opts.maxDepth > 0 && len(e.stack) >= e.opts.maxDepth {
		return token.MaxDepthExceeded
	}
	e.stack = append(e.stack, encFrame{dict: dict})
	if dict {
		e.sink.AddByte(token.DictionaryStart)
	} else {
		e.sink.AddByte(token.ListStart)
	}
	return nil
}

// End closes the innermost open container.
func (e *Encoder) End() error {
	if e.closed {
		return ErrClosed
	}
	if len(e.stack) == 0 {
		return ErrUnbalancedEnd
	}
	if top := e.stack[len(e.stack)-1]; top.hasKey {
		return fmt.Errorf("%w: %q", ErrMissingValue, top.last)
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.sink.AddByte(token.End)
	return nil
}

// Key writes a dictionary key. Keys must be strictly ascending unless order
// verification is disabled.
func (e *Encoder) Key(k string) error {
	if e.closed {
		return ErrClosed
	}
	if len(e.stack) == 0 || !e.stack[len(e.stack)-1].dict {
		return ErrKeyOutsideDictionary
	}
	top := &e.stack[len(e.stack)-1]
	if top.hasKey {
		return fmt.Errorf("%w: %q after %q", ErrKeyAfterKey, k, top.last)
	}
	if !e.opts.noOrderTest && top.hasLast && k <= top.last {
		return fmt.Errorf("%w: %q after %q", token.DictKeysOutOfOrder, k, top.last)
	}
	top.hasKey = true
	top.last, top.hasLast = k, true
	e.writeBytes(k)
	return nil
}

func (e *Encoder) Int(v int64) error {
	if err := e.beginValue(); err != nil {
		return err
	}
	e.sink.AddByte(token.IntegerStart)
	e.sink.AddBytes(strconv.AppendInt(e.scratch[:0], v, 10))
	e.sink.AddByte(token.End)
	return nil
}

// ByteString writes a byte string held in s.
func (e *Encoder) ByteString(s string) error {
	if err := e.beginValue(); err != nil {
		return err
	}
	e.writeBytes(s)
	return nil
}

func (e *Encoder) Bytes(b []byte) error {
	return e.ByteString(string(b))
}

func (e *Encoder) writeBytes(s string) {
	e.sink.AddBytes(strconv.AppendInt(e.scratch[:0], int64(len(s)), 10))
	e.sink.AddByte(token.LengthSep)
	e.sink.AddString(s)
}

// WriteEvent applies a single event.
func (e *Encoder) WriteEvent(ev *Event) error {
	switch ev.Type {
	case EventBeginDictionary:
		return e.BeginDictionary()
	case EventBeginList:
		return e.BeginList()
	case EventEndDictionary, EventEndList:
		return e.End()
	case EventKey:
		return e.Key(ev.Key)
	case EventString:
		return e.ByteString(ev.String)
	case EventInt:
		return e.Int(ev.Int)
	}
	return fmt.Errorf("unknown event %s", ev.Type)
}

// WriteNode writes node in canonical form at the current position.
func (e *Encoder) WriteNode(node *ir.Node) error {
	return walk(node, func(ev Event) error {
		return e.WriteEvent(&ev)
	})
}

// Close reports containers left open. The encoder accepts no further
// calls afterwards.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if n := len(e.stack); n > 0 {
		if e.stack[n-1].dict {
			return fmt.Errorf("%w: %d open containers", token.UnterminatedDictionary, n)
		}
		return fmt.Errorf("%w: %d open containers", token.UnterminatedList, n)
	}
	return nil
}
