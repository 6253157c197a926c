package stream

import (
	"fmt"

	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

// builder assembles events into a node on an explicit value stack.
type builder struct {
	stack []*ir.Node
	key   string
	root  *ir.Node
}

// add consumes ev and reports whether a complete top-level value has been
// built.
func (b *builder) add(ev *Event) (bool, error) {
	switch ev.Type {
	case EventBeginList:
		n := ir.NewList()
		if err := b.attach(n); err != nil {
			return false, err
		}
		b.stack = append(b.stack, n)
		return false, nil
	case EventBeginDictionary:
		n := ir.NewDictionary()
		if err := b.attach(n); err != nil {
			return false, err
		}
		b.stack = append(b.stack, n)
		return false, nil
	case EventEndList, EventEndDictionary:
		if len(b.stack) == 0 {
			return false, ErrUnbalancedEnd
		}
		b.stack = b.stack[:len(b.stack)-1]
		return len(b.stack) == 0, nil
	case EventKey:
		if len(b.stack) == 0 || !b.stack[len(b.stack)-1].IsDictionary() {
			return false, ErrKeyOutsideDictionary
		}
		b.key = ev.Key
		return false, nil
	case EventInt:
		return len(b.stack) == 0, b.attach(ir.FromInt(ev.Int))
	case EventString:
		return len(b.stack) == 0, b.attach(ir.FromString(ev.String))
	}
	return false, fmt.Errorf("unknown event %s", ev.Type)
}

func (b *builder) attach(n *ir.Node) error {
	if len(b.stack) == 0 {
		b.root = n
		return nil
	}
	top := b.stack[len(b.stack)-1]
	if top.IsList() {
		top.Values = append(top.Values, n)
		return nil
	}
	top.Fields = append(top.Fields, ir.FromString(b.key))
	top.Values = append(top.Values, n)
	return nil
}

// EventsToNode builds a node from the events of exactly one value.
func EventsToNode(events []Event) (*ir.Node, error) {
	b := &builder{}
	for i := range events {
		done, err := b.add(&events[i])
		if err != nil {
			return nil, err
		}
		if done {
			if i != len(events)-1 {
				return nil, token.TrailingData
			}
			return b.root, nil
		}
	}
	if len(b.stack) != 0 {
		return nil, ErrMissingValue
	}
	return nil, token.EmptyInput
}

// NodeToEvents flattens node into events, visiting dictionary entries in
// canonical order. None values produce no events, and a None dictionary
// value drops its entry.
func NodeToEvents(node *ir.Node) []Event {
	var res []Event
	walk(node, func(ev Event) error {
		res = append(res, ev)
		return nil
	})
	return res
}

type walkItem struct {
	node  *ir.Node
	end   bool
	key   string
	isKey bool
}

// walk emits the events of node in order using an explicit stack.
func walk(node *ir.Node, emit func(Event) error) error {
	stack := []walkItem{{node: node}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.isKey {
			if err := emit(Event{Type: EventKey, Key: it.key}); err != nil {
				return err
			}
			continue
		}
		n := it.node
		if it.end {
			t := EventEndList
			if n.Type == ir.DictionaryType {
				t = EventEndDictionary
			}
			if err := emit(Event{Type: t}); err != nil {
				return err
			}
			continue
		}
		if n == nil {
			continue
		}
		var err error
		switch n.Type {
		case ir.IntegerType:
			err = emit(Event{Type: EventInt, Int: n.Int64})
		case ir.StringType:
			err = emit(Event{Type: EventString, String: n.String})
		case ir.ListType:
			err = emit(Event{Type: EventBeginList})
			stack = append(stack, walkItem{node: n, end: true})
			for i := len(n.Values) - 1; i >= 0; i-- {
				stack = append(stack, walkItem{node: n.Values[i]})
			}
		case ir.DictionaryType:
			err = emit(Event{Type: EventBeginDictionary})
			stack = append(stack, walkItem{node: n, end: true})
			kvs := n.Sorted()
			for i := len(kvs) - 1; i >= 0; i-- {
				if kvs[i].Val.IsNone() {
					continue
				}
				stack = append(stack, walkItem{node: kvs[i].Val})
				stack = append(stack, walkItem{isKey: true, key: kvs[i].Key.String})
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
