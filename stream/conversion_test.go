package stream

import (
	"errors"
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/internal/conformance"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
)

func TestEventsRoundTrip(t *testing.T) {
	for _, tc := range conformance.Valid {
		t.Run(tc.Name, func(t *testing.T) {
			node, err := ParseString(tc.In)
			if err != nil {
				t.Fatal(err)
			}
			back, err := EventsToNode(NodeToEvents(node))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("got %q want %q", encode.MustString(back), tc.Want)
			}
		})
	}
}

func TestEventsToNodeErrors(t *testing.T) {
	if _, err := EventsToNode(nil); !errors.Is(err, token.EmptyInput) {
		t.Errorf("got %v", err)
	}
	if _, err := EventsToNode([]Event{{Type: EventInt}, {Type: EventInt}}); !errors.Is(err, token.TrailingData) {
		t.Errorf("got %v", err)
	}
	if _, err := EventsToNode([]Event{{Type: EventBeginList}}); !errors.Is(err, ErrMissingValue) {
		t.Errorf("got %v", err)
	}
	if _, err := EventsToNode([]Event{{Type: EventEndList}}); !errors.Is(err, ErrUnbalancedEnd) {
		t.Errorf("got %v", err)
	}
	if _, err := EventsToNode([]Event{{Type: EventBeginList}, {Type: EventKey, Key: "a"}}); !errors.Is(err, ErrKeyOutsideDictionary) {
		t.Errorf("got %v", err)
	}
}
