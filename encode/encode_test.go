package encode_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/parse"
	"github.com/clockworkengineer/bencode-sub000/token"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want string
	}{
		{"zero", ir.FromInt(0), "i0e"},
		{"negative", ir.FromInt(-42), "i-42e"},
		{"max", ir.FromInt(math.MaxInt64), "i9223372036854775807e"},
		{"min", ir.FromInt(math.MinInt64), "i-9223372036854775808e"},
		{"empty string", ir.FromString(""), "0:"},
		{"string", ir.FromString("spam"), "4:spam"},
		{"binary", ir.FromBytes([]byte{0, 0xff, ':'}), "3:\x00\xff:"},
		{"empty list", ir.NewList(), "le"},
		{"empty dictionary", ir.NewDictionary(), "de"},
		{"none", ir.None(), ""},
		{"nil", nil, ""},
		{"list", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a"), ir.NewList()}), "li1e1:alee"},
		{"none in list", ir.FromSlice([]*ir.Node{ir.None(), ir.FromInt(1)}), "li1ee"},
		{"dictionary", ir.FromMap(map[string]*ir.Node{
			"name": ir.FromString("John"),
			"age":  ir.FromInt(25),
		}), "d3:agei25e4:name4:Johne"},
		{"unsorted dictionary", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("b"), Val: ir.FromInt(2)},
			{Key: ir.FromString("a"), Val: ir.FromInt(1)},
			{Key: ir.FromString(""), Val: ir.FromInt(0)},
		}), "d0:i0e1:ai1e1:bi2ee"},
		{"raw byte key order", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromBytes([]byte{0xc3}), Val: ir.FromInt(2)},
			{Key: ir.FromString("z"), Val: ir.FromInt(1)},
		}), "d1:zi1e1:\xc3i2ee"},
		{"none value dropped", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("a"), Val: ir.None()},
			{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		}), "d1:bi1ee"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encode.MustString(tc.in); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeAppendsToSink(t *testing.T) {
	sink := token.NewBufferSink()
	sink.AddString("prefix")
	encode.Encode(ir.FromInt(1), sink)
	if got := sink.String(); got != "prefixi1e" {
		t.Errorf("got %q", got)
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	inputs := []string{
		"i007e",
		"d3:agei25e4:name4:Johne",
		"ld1:ai1e1:bi2eei-3e4:spame",
		"003:abc",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			n, err := parse.ParseString(in)
			if err != nil {
				t.Fatal(err)
			}
			once := encode.Bytes(n)
			n2, err := parse.ParseBytes(once, parse.Strict())
			if err != nil {
				t.Fatalf("canonical output %q does not parse strictly: %v", once, err)
			}
			twice := encode.Bytes(n2)
			if string(once) != string(twice) {
				t.Errorf("got %q then %q", once, twice)
			}
		})
	}
}

func TestEncodeFile(t *testing.T) {
	doc := ir.FromMap(map[string]*ir.Node{
		"pieces": ir.FromBytes(make([]byte, 40)),
		"name":   ir.FromString("file.bin"),
	})
	for _, name := range []string{"out.bencode", "out.bencode.zst", "out.bencode.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := encode.EncodeFile(doc, path); err != nil {
				t.Fatal(err)
			}
			back, err := parse.ParseFile(path, parse.NoTrailing())
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(doc, back) {
				t.Errorf("got %s", encode.MustString(back))
			}
		})
	}
}
