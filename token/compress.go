package token

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Compression names a file compression scheme.
type Compression int

const (
	NoCompression Compression = iota
	Zstd
	LZ4
)

// CompressionFor picks the compression implied by the suffix of path.
func CompressionFor(path string) Compression {
	switch filepath.Ext(path) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	}
	return NoCompression
}

// decompressReader sniffs br for a zstd or lz4 frame header and wraps it
// accordingly. The returned func releases decoder resources.
func decompressReader(br *bufio.Reader) (io.Reader, func(), error) {
	head, _ := br.Peek(4)
	switch {
	case bytes.Equal(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case bytes.Equal(head, lz4Magic):
		return lz4.NewReader(br), nil, nil
	}
	return br, nil, nil
}

// compressWriter wraps w according to c.
func compressWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
