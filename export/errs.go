package export

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrTOMLRoot          = errors.New("toml root must be a dictionary")
	ErrTOMLMixedList     = errors.New("lists must contain elements of the same type")
	ErrTOMLNone          = errors.New("toml has no representation for none")
	ErrTOMLDuplicateKey  = errors.New("keys are equal as toml text")
)
