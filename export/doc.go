// Package export writes bencode trees in other document formats.
//
// Byte strings that are valid UTF-8 are written as text. Other byte
// strings are read as Latin-1, so each byte becomes the code point of
// the same value and no information is lost. CBOR is the exception: it
// has a native byte string type and uses it for such values.
//
// None values are written as null where the target format has one and
// are omitted otherwise.
package export
