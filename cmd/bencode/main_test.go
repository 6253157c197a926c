package main

import (
	"bytes"
	"testing"

	bencode "github.com/clockworkengineer/bencode-sub000"
	"github.com/clockworkengineer/bencode-sub000/format"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/libdiff"
)

func mustDecode(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := bencode.Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return n
}

func TestWriteChanges(t *testing.T) {
	a := mustDecode(t, "d1:ai1e1:bi2ee")
	b := mustDecode(t, "d1:ai3e1:ci4ee")
	buf := &bytes.Buffer{}
	if err := writeChanges(buf, libdiff.Diff(a, b), false); err != nil {
		t.Fatal(err)
	}
	want := "~ $.a 1 -> 3\n- $.b 2\n+ $.c 4\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestExportDocNewline(t *testing.T) {
	doc := mustDecode(t, "li1ee")
	for _, tc := range []struct {
		f    format.Format
		want string
	}{
		{format.JSONFormat, "[1]\n"},
		{format.BencodeFormat, "li1ee"},
	} {
		buf := &bytes.Buffer{}
		if err := exportDoc(buf, doc, tc.f); err != nil {
			t.Fatalf("%s: %v", tc.f, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.f, got, tc.want)
		}
	}
}

func TestMatcher(t *testing.T) {
	doc := mustDecode(t, "d4:name4:John3:agei25ee")
	for _, tc := range []struct {
		name string
		m    *matcher
		want bool
	}{
		{"pattern", &matcher{pattern: mustDecode(t, "d4:name4:Johne")}, true},
		{"pattern miss", &matcher{pattern: mustDecode(t, "d4:name3:Bobe")}, false},
		{"expr", &matcher{script: `doc.age > 20`}, true},
		{"expr miss", &matcher{script: `doc.name == "Bob"`}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.m.match(doc)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v want %v", got, tc.want)
			}
		})
	}
}
