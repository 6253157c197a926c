package parse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/internal/conformance"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/token"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	jackpal "github.com/jackpal/bencode-go"
)

func TestConformance(t *testing.T) {
	for _, tc := range append(conformance.Valid, conformance.Invalid...) {
		t.Run(tc.Name, func(t *testing.T) {
			node, err := ParseString(tc.In)
			if tc.OK() {
				if err != nil {
					t.Fatalf("parse %q: %v", tc.In, err)
				}
				if got := encode.MustString(node); got != tc.Want {
					t.Errorf("got %q want %q", got, tc.Want)
				}
				return
			}
			if err == nil {
				t.Fatalf("parse %q: expected %s, got %q", tc.In, tc.Kind, encode.MustString(node))
			}
			if got := token.KindOf(err); got != tc.Kind {
				t.Errorf("parse %q: got %s want %s (%v)", tc.In, got, tc.Kind, err)
			}
			var se *token.SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("got %T want *token.SyntaxError", err)
			}
		})
	}
}

func TestStrict(t *testing.T) {
	for _, tc := range conformance.Strict {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := ParseString(tc.In); err != nil {
				t.Fatalf("lenient parse failed: %v", err)
			}
			_, err := ParseString(tc.In, Strict())
			if got := token.KindOf(err); got != tc.Kind {
				t.Errorf("got %s want %s", got, tc.Kind)
			}
		})
	}
}

func TestTrailing(t *testing.T) {
	for _, tc := range conformance.Trailing {
		t.Run(tc.Name, func(t *testing.T) {
			node, err := ParseString(tc.In)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(node); got != tc.Want {
				t.Errorf("got %q want %q", got, tc.Want)
			}
			_, err = ParseString(tc.In, NoTrailing())
			if got := token.KindOf(err); got != tc.Kind {
				t.Errorf("got %s want %s", got, tc.Kind)
			}
		})
	}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
		off  int
		char byte
	}{
		{"d3:bbbi1e3:aaai2ee", token.DictKeysOutOfOrder, 9, 0},
		{"lxe", token.UnexpectedCharacter, 1, 'x'},
		{"li1ei2", token.UnterminatedInteger, 4, 0},
		{"10:short", token.StringTooShort, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseString(tc.in)
			var se *token.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got %v", err)
			}
			if se.Kind != tc.kind || se.Pos.I != tc.off || se.Char != tc.char {
				t.Errorf("got %s at %d char %q want %s at %d char %q", se.Kind, se.Pos.I, se.Char, tc.kind, tc.off, tc.char)
			}
		})
	}
}

func TestDeepNesting(t *testing.T) {
	for _, in := range []string{conformance.Nested(1000), conformance.NestedDictionaries(1000)} {
		node, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := encode.MustString(node); got != in {
			t.Errorf("deep round trip changed the document")
		}
	}
}

func TestMaxDepth(t *testing.T) {
	in := "llli1eeee"
	if _, err := ParseString(in, MaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
	_, err := ParseString(in, MaxDepth(2))
	if !errors.Is(err, token.MaxDepthExceeded) {
		t.Errorf("got %v want %s", err, token.MaxDepthExceeded)
	}
	_, err = ParseString("d1:ad1:ai1eee", MaxDepth(1))
	if !errors.Is(err, token.MaxDepthExceeded) {
		t.Errorf("got %v want %s", err, token.MaxDepthExceeded)
	}
}

func TestRoundTrip(t *testing.T) {
	in := "d3:agei25e4:name4:Johne"
	node, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromMap(map[string]*ir.Node{
		"age":  ir.FromInt(25),
		"name": ir.FromString("John"),
	})
	if !ir.Equal(node, want) {
		t.Errorf("got %s", encode.ViewString(node))
	}
	if got := encode.MustString(node); got != in {
		t.Errorf("got %q want %q", got, in)
	}
}

func TestAgainstReferenceDecoder(t *testing.T) {
	for _, tc := range conformance.Valid {
		if tc.In != tc.Want {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			want, err := jackpal.Decode(bytes.NewReader([]byte(tc.In)))
			if err != nil {
				t.Fatalf("reference decoder: %v", err)
			}
			node, err := ParseString(tc.In)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, ir.ToAny(node), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-reference +ours):\n%s", diff)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.bencode")
	if err := os.WriteFile(path, []byte("d4:listli1e3:twoee"), 0o644); err != nil {
		t.Fatal(err)
	}
	node, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	l, err := node.RequiredList("list")
	if err != nil || len(l) != 2 {
		t.Errorf("got %v %v", l, err)
	}
	_, err = ParseFile(filepath.Join(dir, "missing.bencode"))
	if got := token.KindOf(err); got != token.FileNotFound {
		t.Errorf("got %s want %s", got, token.FileNotFound)
	}

	// The same error kinds come out of a file source.
	bad := filepath.Join(dir, "bad.bencode")
	if err := os.WriteFile(bad, []byte("10:short"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ParseFile(bad)
	if got := token.KindOf(err); got != token.StringTooShort {
		t.Errorf("got %s want %s", got, token.StringTooShort)
	}
}
