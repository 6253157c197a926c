package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	BencodeFormat Format = iota
	JSONFormat
	YAMLFormat
	XMLFormat
	TOMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"b":       BencodeFormat,
		"bencode": BencodeFormat,
		"torrent": BencodeFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"x":       XMLFormat,
		"xml":     XMLFormat,
		"t":       TOMLFormat,
		"toml":    TOMLFormat,
		"c":       CBORFormat,
		"cbor":    CBORFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses a format from the extension of path.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zst", ".zstd", ".lz4":
		return FromPath(strings.TrimSuffix(path, filepath.Ext(path)))
	case ".yml":
		return YAMLFormat, nil
	case "":
		return 0, fmt.Errorf("%w: no extension on %q", ErrBadFormat, path)
	}
	return ParseFormat(ext[1:])
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case BencodeFormat:
		return []byte("bencode"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsBencode() bool { return f == BencodeFormat }

// IsBinary reports whether output in this format is not text.
func (f Format) IsBinary() bool { return f == BencodeFormat || f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case BencodeFormat:
		return ".torrent"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case XMLFormat:
		return ".xml"
	case TOMLFormat:
		return ".toml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{BencodeFormat, JSONFormat, YAMLFormat, XMLFormat, TOMLFormat, CBORFormat}
}
