package ir

import "fmt"

// Required returns the value under key or ErrMissingField.
func (y *Node) Required(key string) (*Node, error) {
	if !y.IsDictionary() {
		return nil, fmt.Errorf("%w: lookup %q in %s", ErrNotDictionary, key, typeOf(y))
	}
	v := y.Get(key)
	if v == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	return v, nil
}

func (y *Node) requiredOf(key string, t Type) (*Node, error) {
	v, err := y.Required(key)
	if err != nil {
		return nil, err
	}
	if v.Type != t {
		return nil, fmt.Errorf("%w: %q is %s, want %s", ErrWrongType, key, v.Type, t)
	}
	return v, nil
}

func (y *Node) RequiredInt(key string) (int64, error) {
	v, err := y.requiredOf(key, IntegerType)
	if err != nil {
		return 0, err
	}
	return v.Int64, nil
}

func (y *Node) RequiredString(key string) (string, error) {
	v, err := y.requiredOf(key, StringType)
	if err != nil {
		return "", err
	}
	return v.String, nil
}

func (y *Node) RequiredList(key string) ([]*Node, error) {
	v, err := y.requiredOf(key, ListType)
	if err != nil {
		return nil, err
	}
	return v.Values, nil
}

func (y *Node) RequiredDictionary(key string) (*Node, error) {
	return y.requiredOf(key, DictionaryType)
}

// optionalOf returns nil, nil when key is absent and ErrWrongType when it
// is present with another type.
func (y *Node) optionalOf(key string, t Type) (*Node, error) {
	if !y.IsDictionary() {
		return nil, fmt.Errorf("%w: lookup %q in %s", ErrNotDictionary, key, typeOf(y))
	}
	v := y.Get(key)
	if v == nil {
		return nil, nil
	}
	if v.Type != t {
		return nil, fmt.Errorf("%w: %q is %s, want %s", ErrWrongType, key, v.Type, t)
	}
	return v, nil
}

func (y *Node) OptionalInt(key string) (*int64, error) {
	v, err := y.optionalOf(key, IntegerType)
	if v == nil {
		return nil, err
	}
	i := v.Int64
	return &i, nil
}

func (y *Node) OptionalString(key string) (*string, error) {
	v, err := y.optionalOf(key, StringType)
	if v == nil {
		return nil, err
	}
	s := v.String
	return &s, nil
}

func (y *Node) OptionalList(key string) ([]*Node, error) {
	v, err := y.optionalOf(key, ListType)
	if v == nil {
		return nil, err
	}
	return v.Values, nil
}

func (y *Node) OptionalDictionary(key string) (*Node, error) {
	return y.optionalOf(key, DictionaryType)
}
