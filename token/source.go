package token

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// Source is a forward-only cursor over input bytes.
//
// Current returns the byte under the cursor and false once the input is
// exhausted. Next advances by one byte and is a no-op at the end. Reset
// rewinds to the first byte. Offset is the number of bytes consumed.
type Source interface {
	Current() (byte, bool)
	Next()
	More() bool
	Reset()
	Offset() int
}

// BufferSource is a Source over an in-memory byte slice. The slice is not
// copied.
type BufferSource struct {
	d []byte
	i int
}

func NewBufferSource(d []byte) *BufferSource {
	return &BufferSource{d: d}
}

func NewStringSource(s string) *BufferSource {
	return &BufferSource{d: []byte(s)}
}

func (b *BufferSource) Current() (byte, bool) {
	if b.i >= len(b.d) {
		return 0, false
	}
	return b.d[b.i], true
}

func (b *BufferSource) Next() {
	if b.i < len(b.d) {
		b.i++
	}
}

func (b *BufferSource) More() bool  { return b.i < len(b.d) }
func (b *BufferSource) Reset()      { b.i = 0 }
func (b *BufferSource) Offset() int { return b.i }

// Skip advances the cursor by n bytes, stopping at the end of input.
func (b *BufferSource) Skip(n int) {
	b.i = min(b.i+n, len(b.d))
}

// Bytes returns the unread remainder of the input.
func (b *BufferSource) Bytes() []byte {
	return b.d[b.i:]
}

// FileSource is a buffered Source over a file. Read errors other than
// io.EOF end the input early and are reported by Err.
type FileSource struct {
	path   string
	f      *os.File
	r      *bufio.Reader
	closer func()
	cur    byte
	ok     bool
	off    int
	err    error
}

// OpenFile opens path for reading. Failure to open maps to FileNotFound or
// IOFailure.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr(path, err)
	}
	fs := &FileSource{path: path, f: f}
	if err := fs.start(); err != nil {
		f.Close()
		return nil, err
	}
	return fs, nil
}

func (fs *FileSource) start() error {
	r, closer, err := decompressReader(bufio.NewReader(fs.f))
	if err != nil {
		return ioErr(fs.path, err)
	}
	fs.r = bufio.NewReader(r)
	fs.closer = closer
	fs.off = 0
	fs.err = nil
	fs.read()
	return nil
}

func (fs *FileSource) read() {
	c, err := fs.r.ReadByte()
	if err != nil {
		fs.ok = false
		if !errors.Is(err, io.EOF) && fs.err == nil {
			fs.err = ioErr(fs.path, err)
		}
		return
	}
	fs.cur = c
	fs.ok = true
}

func (fs *FileSource) Current() (byte, bool) {
	return fs.cur, fs.ok
}

func (fs *FileSource) Next() {
	if !fs.ok {
		return
	}
	fs.off++
	fs.read()
}

func (fs *FileSource) More() bool  { return fs.ok }
func (fs *FileSource) Offset() int { return fs.off }

// Reset rewinds to the start of the file. A failure to rewind leaves the
// source exhausted and is reported by Err.
func (fs *FileSource) Reset() {
	fs.release()
	if _, err := fs.f.Seek(0, io.SeekStart); err != nil {
		fs.ok = false
		fs.err = ioErr(fs.path, err)
		return
	}
	if err := fs.start(); err != nil {
		fs.ok = false
		fs.err = err
	}
}

func (fs *FileSource) Err() error { return fs.err }

func (fs *FileSource) Path() string { return fs.path }

func (fs *FileSource) release() {
	if fs.closer != nil {
		fs.closer()
		fs.closer = nil
	}
}

func (fs *FileSource) Close() error {
	fs.release()
	fs.ok = false
	return fs.f.Close()
}

// ReadFile returns the whole, decompressed content of the file at path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr(path, err)
	}
	defer f.Close()
	r, closer, err := decompressReader(bufio.NewReader(f))
	if err != nil {
		return nil, ioErr(path, err)
	}
	if closer != nil {
		defer closer()
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, ioErr(path, err)
	}
	return d, nil
}
