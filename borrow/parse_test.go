package borrow

import (
	"errors"
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/internal/conformance"
	"github.com/clockworkengineer/bencode-sub000/parse"
	"github.com/clockworkengineer/bencode-sub000/stream"
	"github.com/clockworkengineer/bencode-sub000/token"
)

func TestConformance(t *testing.T) {
	for _, tc := range append(conformance.Valid, conformance.Invalid...) {
		t.Run(tc.Name, func(t *testing.T) {
			node, err := Parse([]byte(tc.In))
			if got := token.KindOf(err); got != tc.Kind {
				t.Fatalf("parse %q: got %s want %s", tc.In, got, tc.Kind)
			}
			if got := ValidateKind([]byte(tc.In)); got != tc.Kind {
				t.Errorf("validate %q: got %s want %s", tc.In, got, tc.Kind)
			}
			if !tc.OK() {
				return
			}
			if got := encode.MustString(node.ToOwned()); got != tc.Want {
				t.Errorf("got %q want %q", got, tc.Want)
			}
		})
	}
}

func TestEquivalence(t *testing.T) {
	for _, tc := range append(conformance.Valid, conformance.Invalid...) {
		t.Run(tc.Name, func(t *testing.T) {
			rec, rerr := parse.ParseString(tc.In)
			it, ierr := stream.ParseString(tc.In)
			bn, berr := Parse([]byte(tc.In))
			rk, ik, bk := token.KindOf(rerr), token.KindOf(ierr), token.KindOf(berr)
			if rk != ik || rk != bk {
				t.Fatalf("kinds differ: recursive %s iterative %s borrowed %s", rk, ik, bk)
			}
			if rerr != nil {
				return
			}
			r, i, b := encode.MustString(rec), encode.MustString(it), encode.MustString(bn.ToOwned())
			if r != i || r != b {
				t.Errorf("trees differ: %q %q %q", r, i, b)
			}
		})
	}
}

func TestStrict(t *testing.T) {
	for _, tc := range conformance.Strict {
		t.Run(tc.Name, func(t *testing.T) {
			if err := Validate([]byte(tc.In)); err != nil {
				t.Fatalf("lenient validate failed: %v", err)
			}
			if got := ValidateKind([]byte(tc.In), Strict()); got != tc.Kind {
				t.Errorf("got %s want %s", got, tc.Kind)
			}
		})
	}
}

func TestTrailing(t *testing.T) {
	for _, tc := range conformance.Trailing {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.In)); !errors.Is(err, tc.Kind) {
				t.Errorf("parse: got %v want %s", err, tc.Kind)
			}
			if err := Validate([]byte(tc.In)); !errors.Is(err, tc.Kind) {
				t.Errorf("validate: got %v want %s", err, tc.Kind)
			}
		})
	}
}

func TestDeepNesting(t *testing.T) {
	in := []byte(conformance.Nested(1000))
	if err := Validate(in); err != nil {
		t.Fatal(err)
	}
	node, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node.ToOwned()); got != string(in) {
		t.Errorf("deep round trip changed the document")
	}
	if err := Validate([]byte(conformance.NestedDictionaries(1000))); err != nil {
		t.Error(err)
	}
}

func TestMaxDepth(t *testing.T) {
	in := []byte("llli1eeee")
	if err := Validate(in, MaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
	if got := ValidateKind(in, MaxDepth(2)); got != token.MaxDepthExceeded {
		t.Errorf("got %s", got)
	}
}

func TestBorrowsInput(t *testing.T) {
	data := []byte("d3:agei25e4:name4:Johne")
	node, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	name := node.Get("name")
	if name == nil {
		t.Fatal("missing name")
	}
	if s, _ := name.AsString(); s != "John" {
		t.Errorf("got %q", s)
	}
	owned := node.ToOwned()
	data[len(data)-2] = 'X'
	if b, _ := name.AsBytes(); string(b) != "JohX" {
		t.Errorf("borrowed bytes do not alias input: %q", b)
	}
	if s, _ := owned.Get("name").AsString(); s != "John" {
		t.Errorf("owned copy aliases input: %q", s)
	}
	if age, ok := node.Get("age").AsInt(); !ok || age != 25 {
		t.Errorf("got %d %v", age, ok)
	}
	if node.Get("missing") != nil || node.GetBytes([]byte("age")) == nil {
		t.Errorf("lookup misbehaved")
	}
	if node.Len() != 2 {
		t.Errorf("got len %d", node.Len())
	}
}

func TestValidateNoAlloc(t *testing.T) {
	inputs := [][]byte{
		[]byte("d3:agei25e4:name4:Johne"),
		[]byte("ld1:ai1eei-3e4:spame"),
		[]byte("d3:bbbi1e3:aaai2ee"),
		[]byte("10:short"),
	}
	for _, in := range inputs {
		n := testing.AllocsPerRun(100, func() {
			Validate(in)
		})
		if n != 0 {
			t.Errorf("%q: got %v allocs want 0", in, n)
		}
	}
}
