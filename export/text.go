package export

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// text returns s as valid UTF-8, mapping each byte of an invalid string
// to the code point of the same value.
func text(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	b := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = rune(s[i])
	}
	return string(b)
}

// writeQuoted writes s as a double quoted string with backslash escapes
// for quotes, backslashes and control characters.
func writeQuoted(w *strings.Builder, s string) {
	w.WriteByte('"')
	escape(w, text(s))
	w.WriteByte('"')
}

func escape(w *strings.Builder, s string) {
	for _, r := range s {
		switch {
		case r == '"':
			w.WriteString(`\"`)
		case r == '\\':
			w.WriteString(`\\`)
		case r == '\n':
			w.WriteString(`\n`)
		case r == '\t':
			w.WriteString(`\t`)
		case r == '\r':
			w.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			w.WriteString(`\u00`)
			if r < 0x10 {
				w.WriteByte('0')
			}
			w.WriteString(strconv.FormatInt(int64(r), 16))
		default:
			w.WriteRune(r)
		}
	}
}
