package libdiff

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

// line renders a change compactly for comparison.
func line(c Change) string {
	res := c.Op.Symbol() + " " + c.Path
	if c.From != nil {
		res += " " + encode.MustString(c.From)
	}
	if c.To != nil {
		res += " " + encode.MustString(c.To)
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{name: "equal", from: "d1:ai1ee", to: "d1:ai1ee"},
		{name: "integer", from: "i1e", to: "i2e", want: []string{"~ $ i1e i2e"}},
		{name: "type", from: "i1e", to: "1:a", want: []string{"~ $ i1e 1:a"}},
		{
			name: "dictionary",
			from: "d1:ai1e1:bi2e1:ci3ee",
			to:   "d1:ai1e1:bi5e1:di4ee",
			want: []string{"~ $.b i2e i5e", "- $.c i3e", "+ $.d i4e"},
		},
		{
			name: "nested",
			from: "d4:infod6:lengthi1eee",
			to:   "d4:infod6:lengthi2eee",
			want: []string{"~ $.info.length i1e i2e"},
		},
		{
			name: "odd key",
			from: "d12:piece lengthi1ee",
			to:   "d12:piece lengthi2ee",
			want: []string{`~ $["piece length"] i1e i2e`},
		},
		{
			name: "list to integer",
			from: "li1ei2ei3ee",
			to:   "i0e",
			want: []string{"~ $ li1ei2ei3ee i0e"},
		},
		{
			name: "list insert",
			from: "li1ei2ei3ee",
			to:   "li0ei1ei2ei3ee",
			want: []string{"+ $[0] i0e"},
		},
		{
			name: "list delete",
			from: "li1ei2ei3ee",
			to:   "li1ei3ee",
			want: []string{"- $[1] i2e"},
		},
		{
			name: "list replace",
			from: "li1ei2ei3ee",
			to:   "li1ei9ei3ee",
			want: []string{"~ $[1] i2e i9e"},
		},
		{
			name: "list of dictionaries",
			from: "ld1:ai1eed1:ai2eee",
			to:   "ld1:ai1eed1:ai3eee",
			want: []string{"~ $[1].a i2e i3e"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := Diff(mustParse(t, tt.from), mustParse(t, tt.to))
			if len(cs) != len(tt.want) {
				t.Fatalf("got %d changes %v, want %v", len(cs), cs, tt.want)
			}
			for i := range cs {
				if got := line(cs[i]); got != tt.want[i] {
					t.Errorf("change %d: got %q want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestDiffNone(t *testing.T) {
	cs := Diff(ir.None(), ir.FromInt(1))
	if len(cs) != 1 || cs[0].Op != Insert {
		t.Errorf("got %v", cs)
	}
	if cs := Diff(ir.None(), nil); len(cs) != 0 {
		t.Errorf("got %v", cs)
	}
}

func TestDiffString(t *testing.T) {
	cs := Diff(ir.FromString("hello world"), ir.FromString("hello, world"))
	if len(cs) != 1 {
		t.Fatalf("got %v", cs)
	}
	if cs[0].Text == nil {
		t.Fatal("expected a text edit")
	}
	dmp := diffpatch.New()
	if got := dmp.DiffText2(cs[0].Text); got != "hello, world" {
		t.Errorf("got %q", got)
	}
	cs = Diff(ir.FromString("abc"), ir.FromString("xyz"))
	if len(cs) != 1 || cs[0].Text != nil {
		t.Errorf("expected plain replacement, got %v", cs)
	}
	cs = Diff(ir.FromString("\xff\xfe"), ir.FromString("\xff\xfd"))
	if len(cs) != 1 || cs[0].Text != nil {
		t.Errorf("expected plain replacement for binary strings, got %v", cs)
	}
}

func TestReverse(t *testing.T) {
	from := mustParse(t, "d1:ai1e1:b11:hello world1:ci3ee")
	to := mustParse(t, "d1:ai2e1:b12:hello, world1:di4ee")
	rev := Reverse(Diff(from, to))
	back := Diff(to, from)
	if len(rev) != len(back) {
		t.Fatalf("got %d want %d", len(rev), len(back))
	}
	dmp := diffpatch.New()
	for i := range rev {
		if line(rev[i]) != line(back[i]) {
			t.Errorf("%d: got %q want %q", i, line(rev[i]), line(back[i]))
		}
		if rev[i].Text != nil && dmp.DiffText2(rev[i].Text) != "hello world" {
			t.Errorf("%d: reversed text %q", i, dmp.DiffText2(rev[i].Text))
		}
	}
}
