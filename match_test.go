package bencode

import (
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: "i1e", match: "i1e", res: true},
	{in: "i0e", match: "i1e", res: false},
	{in: "li1ee", match: "li1ee", res: true},
	{in: "le", match: "le", res: true},
	{in: "li1ee", match: "li2ee", res: false},
	{in: "li1ee", match: "li1ei2ee", res: false},
	{in: "li1ee", match: "5:hello", res: false},
	{in: "5:hello", match: "5:hello", res: true},
	{in: "d1:a1:b1:c1:de", match: "d1:a1:be", res: true},
	{in: "d1:a1:be", match: "d1:a1:b1:c1:de", res: false},
	{in: "d1:a1:be", match: "de", res: true},
	{in: "d1:ad1:bi1e1:ci2eee", match: "d1:ad1:ci2eee", res: true},
	{in: "d1:ad1:bi1e1:ci2eee", match: "d1:ad1:ci3eee", res: false},
	{in: "d1:ai1ee", match: "d1:a1:1e", res: false},
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

func TestMatch(t *testing.T) {
	for _, mt := range matchTests {
		doc, match := mustParse(t, mt.in), mustParse(t, mt.match)
		if got := Match(doc, match); got != mt.res {
			t.Errorf("Match(%s, %s) = %v, want %v", mt.in, mt.match, got, mt.res)
		}
	}
}

func TestMatchNone(t *testing.T) {
	doc := mustParse(t, "d1:ai1e1:b2:xye")
	pattern := ir.FromMap(map[string]*ir.Node{"a": ir.None()})
	if !Match(doc, pattern) {
		t.Error("none should match any value")
	}
	pattern = ir.FromMap(map[string]*ir.Node{"z": ir.None()})
	if Match(doc, pattern) {
		t.Error("none should not match a missing key")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		pattern, doc, want string
	}{
		{pattern: "d1:ai0ee", doc: "d1:ai1e1:bi2ee", want: "d1:ai1ee"},
		{pattern: "d1:add1:cdeee", doc: "d1:ad1:bi1e1:cd1:xi9eeee", want: "d1:ad1:cdeee"},
		{pattern: "ld1:ai1eee", doc: "ld1:ai2eed1:ai1e1:bi3eee", want: "ld1:ai1eee"},
		{pattern: "i0e", doc: "4:spam", want: "4:spam"},
	}
	for _, tt := range tests {
		got := encode.MustString(Trim(mustParse(t, tt.pattern), mustParse(t, tt.doc)))
		if got != tt.want {
			t.Errorf("Trim(%s, %s) = %s, want %s", tt.pattern, tt.doc, got, tt.want)
		}
	}
}
