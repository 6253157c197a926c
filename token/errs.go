package token

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrSinkClosed = errors.New("sink closed")
)

// SyntaxError reports a grammar failure at a position. Char is the offending
// byte for UnexpectedCharacter and zero otherwise.
type SyntaxError struct {
	Kind Kind
	Pos  Pos
	Char byte
}

func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedCharacter {
		return fmt.Sprintf("%s %q at %s", e.Kind.Error(), e.Char, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Kind.Error(), e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// ErrorAt builds a *SyntaxError of kind k at offset off within src.
func ErrorAt(k Kind, src Source, off int) *SyntaxError {
	return &SyntaxError{Kind: k, Pos: PosAt(src, off)}
}

// UnexpectedAt reports the byte c at offset off within src.
func UnexpectedAt(c byte, src Source, off int) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedCharacter, Pos: PosAt(src, off), Char: c}
}

// KindOf maps err onto the error taxonomy. Errors which carry no Kind are
// classified as FileNotFound when they wrap fs.ErrNotExist and as IOFailure
// otherwise.
func KindOf(err error) Kind {
	if err == nil {
		return NoError
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	if errors.Is(err, fs.ErrNotExist) {
		return FileNotFound
	}
	return IOFailure
}

// IOError wraps a host error so that it unwraps to both the taxonomy kind
// and the original error.
type IOError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind.Error(), e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind.Error(), e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioErr(path string, err error) error {
	k := IOFailure
	if errors.Is(err, fs.ErrNotExist) {
		k = FileNotFound
	}
	return &IOError{Kind: k, Path: path, Err: err}
}

// SourceErr returns the first read error recorded by src, if src records
// them.
func SourceErr(src Source) error {
	es, ok := src.(interface{ Err() error })
	if !ok {
		return nil
	}
	return es.Err()
}
