package ir

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// The JSON form of a Node is a debugging dump of the IR, not a JSON export
// of the value. Byte strings that are not valid UTF-8 are carried in the
// base64 "bytes" field.
type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case IntegerType:
		type C struct {
			irBase
			Int int64 `json:"int"`
		}
		return json.Marshal(C{irBase: base, Int: y.Int64})
	case StringType:
		if !utf8.ValidString(y.String) {
			type C struct {
				irBase
				Bytes []byte `json:"bytes"`
			}
			return json.Marshal(C{irBase: base, Bytes: []byte(y.String)})
		}
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: y.String})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Int    int64   `json:"int"`
		String *string `json:"string"`
		Bytes  []byte  `json:"bytes"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.Int64 = tmp.Int
	y.String = ""
	if tmp.String != nil {
		y.String = *tmp.String
	} else if tmp.Bytes != nil {
		y.String = string(tmp.Bytes)
	}
	switch y.Type {
	case DictionaryType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("dictionary with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			if seen[f.String] {
				return fmt.Errorf("%w: %q", ErrDuplicateKey, f.String)
			}
			seen[f.String] = true
		}
	case ListType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("list with %d fields", len(y.Fields))
		}
	}
	return nil
}
