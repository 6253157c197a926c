package ir

import (
	"encoding/json"
	"testing"
)

func TestIRJSONRoundTrip(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"age":  FromInt(25),
		"bin":  FromBytes([]byte{0xff, 0x00, 0xfe}),
		"name": FromString("John"),
		"list": FromSlice([]*Node{FromString(""), NewDictionary()}),
	})
	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, back) {
		t.Errorf("round trip changed value: %s", d)
	}
}

func TestIRJSONRejectsDuplicateKeys(t *testing.T) {
	in := `{"type":"Dictionary","fields":[{"type":"String","string":"a"},{"type":"String","string":"a"}],"values":[{"type":"Integer","int":1},{"type":"Integer","int":2}]}`
	if err := json.Unmarshal([]byte(in), &Node{}); err == nil {
		t.Errorf("expected error")
	}
}
