package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	IntegerType
	StringType
	ListType
	DictionaryType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:       "None",
		IntegerType:    "Integer",
		StringType:     "String",
		ListType:       "List",
		DictionaryType: "Dictionary",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":       NoneType,
		"Integer":    IntegerType,
		"String":     StringType,
		"List":       ListType,
		"Dictionary": DictionaryType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		IntegerType,
		StringType,
		ListType,
		DictionaryType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictionaryType:
		return false
	default:
		return true
	}
}
