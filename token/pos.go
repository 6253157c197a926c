package token

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into an input. D is the input itself when it is
// available in memory and is only used to render a sample.
type Pos struct {
	I int
	D []byte
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D[max(0, min(p.I, len(p.D))-5):min(p.I+5, len(p.D))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
}

// PosAt returns the position off within src.
func PosAt(src Source, off int) Pos {
	if b, ok := src.(*BufferSource); ok {
		return Pos{I: off, D: b.d}
	}
	return Pos{I: off}
}
