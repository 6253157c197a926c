package libdiff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/clockworkengineer/bencode-sub000/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

// Symbol is the one character marker for o used in listings.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return "~"
}

// Change is one difference. From is nil for an insertion and To is nil
// for a deletion. Text is set on a replacement of one text string by
// another when a character level edit is smaller than the strings.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
	Text []diffpatch.Diff
}

// Reverse returns the changes that undo cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i := range cs {
		c := cs[i]
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		if c.Text != nil {
			text := make([]diffpatch.Diff, len(c.Text))
			for j, d := range c.Text {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				text[j] = d
			}
			c.Text = text
		}
		res[i] = c
	}
	return res
}
