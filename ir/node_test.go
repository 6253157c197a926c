package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild(t *testing.T) {
	d := NewDictionary()
	if err := d.Set("name", FromString("John")); err != nil {
		t.Fatal(err)
	}
	if err := d.Set("age", FromInt(24)); err != nil {
		t.Fatal(err)
	}
	if err := d.Set("age", FromInt(25)); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("got %d entries want 2", d.Len())
	}
	if err := d.Insert("age", FromInt(1)); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("got %v want %v", err, ErrDuplicateKey)
	}
	if got := d.Keys(); !cmp.Equal(got, []string{"age", "name"}) {
		t.Errorf("got keys %v", got)
	}
	if v, ok := d.Get("age").AsInt(); !ok || v != 25 {
		t.Errorf("got %d %v", v, ok)
	}
	if err := d.Append(FromInt(1)); !errors.Is(err, ErrNotList) {
		t.Errorf("got %v want %v", err, ErrNotList)
	}

	l := NewList()
	if err := l.Append(d); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("x", None()); !errors.Is(err, ErrNotDictionary) {
		t.Errorf("got %v want %v", err, ErrNotDictionary)
	}
	if !d.Delete("age") || d.Delete("age") {
		t.Errorf("delete misbehaved")
	}
	if d.Get("age") != nil {
		t.Errorf("age still present")
	}
}

func TestSorted(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{Key: FromString("zz"), Val: FromInt(1)},
		{Key: FromString(""), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(3)},
	})
	var keys []string
	for _, kv := range d.Sorted() {
		keys = append(keys, kv.Key.String)
	}
	if diff := cmp.Diff([]string{"", "a", "zz"}, keys); diff != "" {
		t.Error(diff)
	}
	if d.Fields[0].String != "zz" {
		t.Errorf("Sorted reordered the node")
	}
}

func TestCloneIndependent(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"l": FromSlice([]*Node{FromInt(1), FromString("x")}),
	})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	c.Get("l").Values[0].Int64 = 2
	if orig.Get("l").Values[0].Int64 != 1 {
		t.Errorf("clone shares storage")
	}
}

func TestAccessorsWrongType(t *testing.T) {
	n := FromInt(3)
	if _, ok := n.AsString(); ok {
		t.Errorf("AsString on integer")
	}
	if _, ok := n.AsList(); ok {
		t.Errorf("AsList on integer")
	}
	if n.Get("x") != nil {
		t.Errorf("Get on integer")
	}
	var nilNode *Node
	if !nilNode.IsNone() {
		t.Errorf("nil is not none")
	}
}

func TestAnyRoundTrip(t *testing.T) {
	v := map[string]any{
		"n": int64(-3),
		"s": "bin\x00ary",
		"l": []any{int64(1), []any{}, map[string]any{}},
	}
	n, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, ToAny(n)); diff != "" {
		t.Error(diff)
	}
	if _, err := FromAny(1.5); !errors.Is(err, ErrWrongType) {
		t.Errorf("got %v want %v", err, ErrWrongType)
	}
}

func TestBuildersKeepKeysUnique(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
	})
	if err := d.Set("a", FromInt(3)); err != nil {
		t.Fatal(err)
	}
	if err := d.Insert("a", FromInt(4)); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("insert got %v want %v", err, ErrDuplicateKey)
	}
	if diff := cmp.Diff([]string{"a"}, d.Keys()); diff != "" {
		t.Error(diff)
	}
	if v, _ := d.Get("a").AsInt(); v != 3 {
		t.Errorf("got %d want 3", v)
	}
}
