package metainfo

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
)

type Algorithm int

const (
	SHA1 Algorithm = iota
	SHA256
	BLAKE3
)

func ParseAlgorithm(v string) (Algorithm, error) {
	a, ok := map[string]Algorithm{
		"sha1":   SHA1,
		"sha256": SHA256,
		"blake3": BLAKE3,
	}[v]
	if ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, v)
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case BLAKE3:
		return "blake3"
	}
	return fmt.Sprintf("<algorithm %d>", int(a))
}

func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBadAlgorithm, a)
}

// Digest hashes the canonical encoding of node.
func Digest(node *ir.Node, a Algorithm) ([]byte, error) {
	h, err := a.New()
	if err != nil {
		return nil, err
	}
	h.Write(encode.Bytes(node))
	return h.Sum(nil), nil
}
