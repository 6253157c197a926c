package token

import (
	"os"
	"path/filepath"
	"testing"
)

func drain(src Source) string {
	var res []byte
	for src.More() {
		c, ok := src.Current()
		if !ok {
			break
		}
		res = append(res, c)
		src.Next()
	}
	return string(res)
}

func TestBufferSource(t *testing.T) {
	src := NewStringSource("i42e")
	if c, ok := src.Current(); !ok || c != 'i' {
		t.Fatalf("got %q %v", c, ok)
	}
	if got := drain(src); got != "i42e" {
		t.Errorf("got %q", got)
	}
	if _, ok := src.Current(); ok {
		t.Errorf("expected exhausted source")
	}
	src.Next()
	if src.Offset() != 4 {
		t.Errorf("got offset %d want 4", src.Offset())
	}
	src.Reset()
	if src.Offset() != 0 || !src.More() {
		t.Errorf("reset failed")
	}
}

func TestEmptyBufferSource(t *testing.T) {
	src := NewBufferSource(nil)
	if src.More() {
		t.Errorf("empty source has more")
	}
	if _, ok := src.Current(); ok {
		t.Errorf("empty source has current")
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.torrent"))
	if got := KindOf(err); got != FileNotFound {
		t.Errorf("got %s want %s", got, FileNotFound)
	}
	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.torrent"))
	if got := KindOf(err); got != FileNotFound {
		t.Errorf("ReadFile got %s want %s", got, FileNotFound)
	}
}

func TestFileRoundTrip(t *testing.T) {
	doc := "d3:agei25e4:name4:Johne"
	for _, name := range []string{"plain.bencode", "doc.bencode.zst", "doc.bencode.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			sink, err := CreateFile(path)
			if err != nil {
				t.Fatal(err)
			}
			sink.AddString("junk")
			sink.Clear()
			sink.AddByte(doc[0])
			sink.AddString(doc[1:10])
			sink.AddBytes([]byte(doc[10:]))
			if c, ok := sink.Last(); !ok || c != 'e' {
				t.Errorf("got last %q %v", c, ok)
			}
			if err := sink.Close(); err != nil {
				t.Fatal(err)
			}
			if name != "plain.bencode" {
				raw, err := os.ReadFile(path)
				if err != nil {
					t.Fatal(err)
				}
				if string(raw) == doc {
					t.Errorf("expected compressed file")
				}
			}
			src, err := OpenFile(path)
			if err != nil {
				t.Fatal(err)
			}
			defer src.Close()
			if got := drain(src); got != doc {
				t.Errorf("got %q want %q", got, doc)
			}
			src.Reset()
			if got := drain(src); got != doc {
				t.Errorf("after reset got %q want %q", got, doc)
			}
			if err := src.Err(); err != nil {
				t.Error(err)
			}
			all, err := ReadFile(path)
			if err != nil || string(all) != doc {
				t.Errorf("ReadFile got %q %v", all, err)
			}
		})
	}
}
