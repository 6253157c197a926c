package token

import "math"

// Grammar bytes.
const (
	IntegerStart    = 'i'
	ListStart       = 'l'
	DictionaryStart = 'd'
	End             = 'e'
	LengthSep       = ':'
	Minus           = '-'
)

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseInt validates and converts the body of an integer token, the bytes
// between 'i' and 'e'. The body is an optional '-' followed by at least one
// digit. Negative zero and values outside the int64 range are rejected, as
// are leading zeros when strict is set. ParseInt does not allocate.
func ParseInt(body []byte, strict bool) (int64, bool) {
	if len(body) == 0 {
		return 0, false
	}
	neg := body[0] == Minus
	digits := body
	if neg {
		digits = body[1:]
	}
	if len(digits) == 0 {
		return 0, false
	}
	if strict && len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	var u uint64
	for _, c := range digits {
		if !IsDigit(c) {
			return 0, false
		}
		d := uint64(c - '0')
		if u > (limit-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	if !neg {
		return int64(u), true
	}
	if u == 0 {
		return 0, false
	}
	return int64(-u), true
}

// ParseLength validates and converts the decimal length prefix of a byte
// string. Leading zeros are rejected when strict is set.
func ParseLength(body []byte, strict bool) (int, bool) {
	if len(body) == 0 {
		return 0, false
	}
	if strict && len(body) > 1 && body[0] == '0' {
		return 0, false
	}
	limit := uint64(math.MaxInt)
	var u uint64
	for _, c := range body {
		if !IsDigit(c) {
			return 0, false
		}
		d := uint64(c - '0')
		if u > (limit-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	return int(u), true
}
