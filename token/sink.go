package token

import (
	"bufio"
	"io"
	"os"
)

// Sink is an append-only byte accumulator.
type Sink interface {
	AddByte(byte)
	AddBytes([]byte)
	AddString(string)
	Clear()
	Last() (byte, bool)
}

// BufferSink accumulates bytes in memory.
type BufferSink struct {
	d []byte
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) AddByte(c byte)     { b.d = append(b.d, c) }
func (b *BufferSink) AddBytes(d []byte)  { b.d = append(b.d, d...) }
func (b *BufferSink) AddString(s string) { b.d = append(b.d, s...) }
func (b *BufferSink) Clear()             { b.d = b.d[:0] }

func (b *BufferSink) Last() (byte, bool) {
	if len(b.d) == 0 {
		return 0, false
	}
	return b.d[len(b.d)-1], true
}

func (b *BufferSink) Bytes() []byte  { return b.d }
func (b *BufferSink) String() string { return string(b.d) }
func (b *BufferSink) Len() int       { return len(b.d) }

func (b *BufferSink) Write(p []byte) (int, error) {
	b.d = append(b.d, p...)
	return len(p), nil
}

// FileSink writes bytes to a file through a buffer. The first write error
// is kept; later writes are dropped.
type FileSink struct {
	path string
	comp Compression
	f    *os.File
	cw   io.WriteCloser
	w    *bufio.Writer
	last byte
	n    int
	err  error
}

// CreateFile creates or truncates path. The suffix ".zst" or ".lz4" selects
// compressed output.
func CreateFile(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, ioErr(path, err)
	}
	fs := &FileSink{path: path, comp: CompressionFor(path), f: f}
	if err := fs.start(); err != nil {
		f.Close()
		return nil, err
	}
	return fs, nil
}

func (fs *FileSink) start() error {
	cw, err := compressWriter(fs.f, fs.comp)
	if err != nil {
		return ioErr(fs.path, err)
	}
	fs.cw = cw
	fs.w = bufio.NewWriter(cw)
	fs.n = 0
	return nil
}

func (fs *FileSink) fail(err error) {
	if fs.err == nil && err != nil {
		fs.err = ioErr(fs.path, err)
	}
}

func (fs *FileSink) AddByte(c byte) {
	if fs.err != nil {
		return
	}
	fs.fail(fs.w.WriteByte(c))
	fs.last = c
	fs.n++
}

func (fs *FileSink) AddBytes(d []byte) {
	if fs.err != nil || len(d) == 0 {
		return
	}
	_, err := fs.w.Write(d)
	fs.fail(err)
	fs.last = d[len(d)-1]
	fs.n += len(d)
}

func (fs *FileSink) AddString(s string) {
	if fs.err != nil || len(s) == 0 {
		return
	}
	_, err := fs.w.WriteString(s)
	fs.fail(err)
	fs.last = s[len(s)-1]
	fs.n += len(s)
}

func (fs *FileSink) Last() (byte, bool) {
	if fs.n == 0 {
		return 0, false
	}
	return fs.last, true
}

// Clear discards everything written so far, truncating the file.
func (fs *FileSink) Clear() {
	if fs.err != nil {
		return
	}
	fs.w.Reset(io.Discard)
	fs.cw.Close()
	if err := fs.f.Truncate(0); err != nil {
		fs.fail(err)
		return
	}
	if _, err := fs.f.Seek(0, io.SeekStart); err != nil {
		fs.fail(err)
		return
	}
	if err := fs.start(); err != nil {
		fs.err = err
	}
}

func (fs *FileSink) Write(p []byte) (int, error) {
	fs.AddBytes(p)
	if fs.err != nil {
		return 0, fs.err
	}
	return len(p), nil
}

func (fs *FileSink) Err() error { return fs.err }

// Close flushes pending output and closes the file, returning the first
// error encountered over the sink's lifetime.
func (fs *FileSink) Close() error {
	if fs.f == nil {
		return fs.err
	}
	if fs.err == nil {
		fs.fail(fs.w.Flush())
	}
	fs.fail(fs.cw.Close())
	fs.fail(fs.f.Close())
	fs.f = nil
	return fs.err
}
