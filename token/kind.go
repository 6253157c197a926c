package token

import "fmt"

// Kind classifies a decode or I/O failure. The numeric value of a Kind is its
// stable error code.
type Kind uint8

const (
	NoError Kind = iota
	EmptyInput
	InvalidInteger
	UnterminatedInteger
	InvalidStringLength
	StringTooShort
	UnterminatedList
	UnterminatedDictionary
	DictKeysOutOfOrder
	DictKeyMustBeString
	UnexpectedCharacter
	FileNotFound
	IOFailure
	TrailingData
	MaxDepthExceeded
)

var kindMessages = [...]string{
	NoError:                "no error",
	EmptyInput:             "empty input",
	InvalidInteger:         "invalid integer",
	UnterminatedInteger:    "unterminated integer",
	InvalidStringLength:    "invalid string length",
	StringTooShort:         "string too short",
	UnterminatedList:       "unterminated list",
	UnterminatedDictionary: "unterminated dictionary",
	DictKeysOutOfOrder:     "dictionary keys must be in order",
	DictKeyMustBeString:    "dictionary key must be string",
	UnexpectedCharacter:    "unexpected character",
	FileNotFound:           "file not found",
	IOFailure:              "io error",
	TrailingData:           "trailing data",
	MaxDepthExceeded:       "maximum nesting depth exceeded",
}

var kindNames = [...]string{
	NoError:                "NoError",
	EmptyInput:             "EmptyInput",
	InvalidInteger:         "InvalidInteger",
	UnterminatedInteger:    "UnterminatedInteger",
	InvalidStringLength:    "InvalidStringLength",
	StringTooShort:         "StringTooShort",
	UnterminatedList:       "UnterminatedList",
	UnterminatedDictionary: "UnterminatedDictionary",
	DictKeysOutOfOrder:     "DictKeysOutOfOrder",
	DictKeyMustBeString:    "DictKeyMustBeString",
	UnexpectedCharacter:    "UnexpectedCharacter",
	FileNotFound:           "FileNotFound",
	IOFailure:              "IO",
	TrailingData:           "TrailingData",
	MaxDepthExceeded:       "MaxDepthExceeded",
}

func (k Kind) Error() string {
	if int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return fmt.Sprintf("unknown error kind %d", uint8(k))
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Code returns the integer code of k. NoError is 0.
func (k Kind) Code() int {
	return int(k)
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("<err: %d is not a kind>", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for i, n := range kindNames {
		if n == string(d) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

// Kinds returns every kind except NoError, in code order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames)-1)
	for i := 1; i < len(kindNames); i++ {
		res = append(res, Kind(i))
	}
	return res
}
