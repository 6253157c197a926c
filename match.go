package bencode

import (
	"github.com/clockworkengineer/bencode-sub000/ir"
)

// Match reports whether doc contains pattern. A None pattern matches
// anything. A dictionary pattern matches a dictionary holding at least
// its keys with matching values. A list pattern matches a list of the
// same length whose elements match pairwise. Integers and strings match
// when equal.
func Match(doc, pattern *ir.Node) bool {
	if pattern.IsNone() {
		return true
	}
	if doc == nil || doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.DictionaryType:
		return matchDictionary(doc, pattern)
	case ir.ListType:
		return matchList(doc, pattern)
	case ir.StringType:
		return doc.String == pattern.String
	case ir.IntegerType:
		return doc.Int64 == pattern.Int64
	}
	return false
}

func matchDictionary(doc, pattern *ir.Node) bool {
	for i, field := range pattern.Fields {
		v := doc.Get(field.String)
		if v == nil || !Match(v, pattern.Values[i]) {
			return false
		}
	}
	return true
}

func matchList(doc, pattern *ir.Node) bool {
	if len(doc.Values) != len(pattern.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to the parts named by pattern.
// Dictionary entries whose key is not in pattern are dropped. For a list
// pattern, each element keeps the first unused element of doc it matches.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.IsDictionary() && doc.IsDictionary():
		res := ir.NewDictionary()
		for i, field := range doc.Fields {
			p := pattern.Get(field.String)
			if p == nil {
				continue
			}
			res.Fields = append(res.Fields, field.Clone())
			res.Values = append(res.Values, Trim(p, doc.Values[i]))
		}
		return res
	case pattern.IsList() && doc.IsList():
		res := ir.NewList()
		used := make([]bool, len(doc.Values))
		for _, p := range pattern.Values {
			for i, v := range doc.Values {
				if used[i] || !Match(v, p) {
					continue
				}
				res.Values = append(res.Values, Trim(p, v))
				used[i] = true
				break
			}
		}
		return res
	case doc == nil:
		return nil
	}
	return doc.Clone()
}
