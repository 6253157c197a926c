package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// RootPath addresses the root of a tree. Longer paths append .name or
// ["name"] for dictionary entries and [i] for list elements.
const RootPath = "$"

// FieldPath appends a dictionary key to path, quoting keys that are not
// plain words.
func FieldPath(path, key string) string {
	if isWord(key) {
		return path + "." + key
	}
	return path + "[" + strconv.Quote(key) + "]"
}

// IndexPath appends a list index to path.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// PathElem is one step of a path: a key when Index is negative and a list
// index otherwise.
type PathElem struct {
	Key   string
	Index int
}

// ParsePath splits a path into its steps.
func ParsePath(p string) ([]PathElem, error) {
	rest, ok := strings.CutPrefix(p, RootPath)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not start with %s", ErrBadPath, p, RootPath)
	}
	var res []PathElem
	for rest != "" {
		switch rest[0] {
		case '.':
			i := 1
			for i < len(rest) && rest[i] != '.' && rest[i] != '[' {
				i++
			}
			if i == 1 {
				return nil, fmt.Errorf("%w: empty key in %q", ErrBadPath, p)
			}
			res = append(res, PathElem{Key: rest[1:i], Index: -1})
			rest = rest[i:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if len(rest) > 1 && rest[1] == '"' {
				q, err := strconv.QuotedPrefix(rest[1:])
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
				}
				end = 1 + len(q)
				if end >= len(rest) || rest[end] != ']' {
					return nil, fmt.Errorf("%w: unterminated [ in %q", ErrBadPath, p)
				}
				key, _ := strconv.Unquote(q)
				res = append(res, PathElem{Key: key, Index: -1})
				rest = rest[end+1:]
				continue
			}
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated [ in %q", ErrBadPath, p)
			}
			n, err := strconv.Atoi(rest[1:end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrBadPath, rest[1:end], p)
			}
			res = append(res, PathElem{Index: n})
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadPath, rest[0], p)
		}
	}
	return res, nil
}

// GetPath returns the node at path p below y. A missing key or an index
// past the end of a list gives nil and no error; a step into a node that
// is not a container of the right type gives ErrWrongType.
func (y *Node) GetPath(p string) (*Node, error) {
	elems, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	cur, at := y, RootPath
	for _, e := range elems {
		if e.Index < 0 {
			if !cur.IsDictionary() {
				return nil, fmt.Errorf("%w: %s is %s, not a dictionary", ErrWrongType, at, cur.typ())
			}
			cur, at = cur.Get(e.Key), FieldPath(at, e.Key)
		} else {
			if !cur.IsList() {
				return nil, fmt.Errorf("%w: %s is %s, not a list", ErrWrongType, at, cur.typ())
			}
			if e.Index >= len(cur.Values) {
				return nil, nil
			}
			cur, at = cur.Values[e.Index], IndexPath(at, e.Index)
		}
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}

func (y *Node) typ() Type {
	if y == nil {
		return NoneType
	}
	return y.Type
}
