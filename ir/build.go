package ir

import "fmt"

// Append adds v to the end of list y.
func (y *Node) Append(v *Node) error {
	if !y.IsList() {
		return fmt.Errorf("%w: append to %s", ErrNotList, typeOf(y))
	}
	y.Values = append(y.Values, v)
	return nil
}

// Set stores v under key in dictionary y, replacing any existing value.
func (y *Node) Set(key string, v *Node) error {
	if !y.IsDictionary() {
		return fmt.Errorf("%w: set %q on %s", ErrNotDictionary, key, typeOf(y))
	}
	if i := y.index(key); i >= 0 {
		y.Values[i] = v
		return nil
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
	return nil
}

// Insert adds a new entry to dictionary y and fails if key is present.
func (y *Node) Insert(key string, v *Node) error {
	if !y.IsDictionary() {
		return fmt.Errorf("%w: insert %q into %s", ErrNotDictionary, key, typeOf(y))
	}
	if y.index(key) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
	return nil
}

// Delete removes key from dictionary y and reports whether it was present.
func (y *Node) Delete(key string) bool {
	if !y.IsDictionary() {
		return false
	}
	i := y.index(key)
	if i < 0 {
		return false
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	return true
}

func typeOf(y *Node) string {
	if y == nil {
		return "<nil>"
	}
	return y.Type.String()
}
