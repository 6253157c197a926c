package libdiff

import (
	"strconv"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

// Diff lists the changes turning from into to, in path order. Equal trees
// give no changes.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	return diff(res, ir.RootPath, from, to)
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	switch {
	case from.IsNone() && to.IsNone():
		return dst
	case from.IsNone():
		return append(dst, Change{Path: path, Op: Insert, To: to})
	case to.IsNone():
		return append(dst, Change{Path: path, Op: Delete, From: from})
	case from.Type != to.Type:
		return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Type {
	case ir.IntegerType:
		if from.Int64 != to.Int64 {
			dst = append(dst, Change{Path: path, Op: Replace, From: from, To: to})
		}
	case ir.StringType:
		if from.String != to.String {
			dst = append(dst, Change{Path: path, Op: Replace, From: from, To: to, Text: diffString(from.String, to.String)})
		}
	case ir.DictionaryType:
		dst = diffDictionary(dst, path, from, to)
	case ir.ListType:
		dst = diffList(dst, path, from, to)
	}
	return dst
}

// diffString returns a character level edit of two text strings, or nil
// when either is not text or the edit is larger than half the shorter
// string.
func diffString(from, to string) []diffpatch.Diff {
	if !utf8.ValidString(from) || !utf8.ValidString(to) {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	size := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			size += len(diffs[i].Text)
		}
	}
	if size > min(len(from), len(to))/2 {
		return nil
	}
	return diffs
}

func diffDictionary(dst []Change, path string, from, to *ir.Node) []Change {
	fs, ts := from.Sorted(), to.Sorted()
	i, j := 0, 0
	for i < len(fs) || j < len(ts) {
		switch {
		case j == len(ts) || (i < len(fs) && fs[i].Key.String < ts[j].Key.String):
			dst = append(dst, Change{Path: ir.FieldPath(path, fs[i].Key.String), Op: Delete, From: fs[i].Val})
			i++
		case i == len(fs) || ts[j].Key.String < fs[i].Key.String:
			dst = append(dst, Change{Path: ir.FieldPath(path, ts[j].Key.String), Op: Insert, To: ts[j].Val})
			j++
		default:
			dst = diff(dst, ir.FieldPath(path, fs[i].Key.String), fs[i].Val, ts[j].Val)
			i++
			j++
		}
	}
	return dst
}

// diffList aligns the elements of from and to by a summary of each
// element and diffs the summary sequences. Elements with equal summaries
// are compared recursively; a deletion directly followed by an insertion
// becomes a replacement. Paths of deleted elements index from, all
// others index to.
func diffList(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pending []int
	flush := func() {
		for _, k := range pending {
			dst = append(dst, Change{Path: ir.IndexPath(path, k), Op: Delete, From: from.Values[k]})
		}
		pending = pending[:0]
	}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					k := pending[0]
					pending = pending[1:]
					dst = diff(dst, ir.IndexPath(path, ti), from.Values[k], to.Values[ti])
				} else {
					dst = append(dst, Change{Path: ir.IndexPath(path, ti), Op: Insert, To: to.Values[ti]})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				dst = diff(dst, ir.IndexPath(path, ti), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

func summaries(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summary keeps containers of one type together so that they are diffed
// recursively; scalars must match exactly.
func summary(node *ir.Node) string {
	switch node.Type {
	case ir.IntegerType:
		return "i" + strconv.FormatInt(node.Int64, 10)
	case ir.StringType:
		return "s" + node.String
	}
	return node.Type.String()
}
