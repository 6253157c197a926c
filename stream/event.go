package stream

import "fmt"

// Event represents a structural event from the decoder.
// Events correspond to the encoder's API methods.
type Event struct {
	Type EventType

	// Value fields (only one is set based on Type). Key and String hold raw
	// bytes.
	Key    string
	String string
	Int    int64

	// Offset is the input offset at which the event starts. It is only set
	// by the decoder.
	Offset int
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or end marker).
func (e *Event) IsValueStart() bool {
	return e.Type == EventBeginDictionary ||
		e.Type == EventBeginList ||
		e.Type == EventString ||
		e.Type == EventInt
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginDictionary EventType = iota
	EventEndDictionary
	EventBeginList
	EventEndList
	EventKey
	EventString
	EventInt
)

func (t EventType) String() string {
	switch t {
	case EventBeginDictionary:
		return "BeginDictionary"
	case EventEndDictionary:
		return "EndDictionary"
	case EventBeginList:
		return "BeginList"
	case EventEndList:
		return "EndList"
	case EventKey:
		return "Key"
	case EventString:
		return "String"
	case EventInt:
		return "Int"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}
