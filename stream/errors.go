package stream

import "errors"

var (
	ErrKeyOutsideDictionary = errors.New("key outside dictionary")
	ErrKeyAfterKey          = errors.New("key after key")
	ErrMissingValue         = errors.New("key without value")
	ErrUnbalancedEnd        = errors.New("end without begin")
	ErrClosed               = errors.New("encoder closed")
)
