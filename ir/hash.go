package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, stable within a process.
// Nodes which are Equal hash alike.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case IntegerType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ListType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case DictionaryType:
		for _, kv := range n.Sorted() {
			h.WriteString(kv.Key.String)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], kv.Val.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
