// Package token holds the lowest layer of the bencode codec: the grammar
// bytes, the error taxonomy shared by every parser, and the byte-level
// Source and Sink abstractions the parsers and encoders are written against.
//
// # Sources
//
// A Source is a forward-only cursor over input bytes:
//
//	src := token.NewBufferSource([]byte("i42e"))
//	for src.More() {
//		c, _ := src.Current()
//		...
//		src.Next()
//	}
//
// FileSource reads from a file opened by path. Files beginning with a zstd or
// lz4 frame header are decompressed transparently.
//
// # Sinks
//
// A Sink is an append-only byte accumulator. BufferSink keeps the bytes in
// memory; FileSink writes them to a file, compressing when the path ends in
// ".zst" or ".lz4". Sink methods do not return errors; FileSink records the
// first failure and reports it from Err and Close.
//
// # Errors
//
// Every grammar failure is a *SyntaxError whose Unwrap returns a Kind, so
//
//	errors.Is(err, token.DictKeysOutOfOrder)
//
// works regardless of which parser produced err. A Kind is itself an error
// and converting it to one does not allocate.
package token
