package parse

import (
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/internal/conformance"
	"github.com/clockworkengineer/bencode-sub000/ir"
)

func FuzzParse(f *testing.F) {
	for _, tc := range conformance.Valid {
		f.Add([]byte(tc.In))
	}
	for _, tc := range conformance.Invalid {
		f.Add([]byte(tc.In))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := ParseBytes(d)
		if err != nil {
			return
		}
		once := encode.Bytes(node)
		back, err := ParseBytes(once, Strict(), NoTrailing())
		if err != nil {
			t.Fatalf("canonical output %q of %q does not parse: %v", once, d, err)
		}
		if !ir.Equal(node, back) {
			t.Fatalf("round trip of %q changed value", d)
		}
		if twice := encode.Bytes(back); string(twice) != string(once) {
			t.Fatalf("canonical encoding not idempotent: %q then %q", once, twice)
		}
	})
}
