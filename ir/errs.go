package ir

import "errors"

var (
	ErrNotDictionary = errors.New("not a dictionary")
	ErrNotList       = errors.New("not a list")
	ErrMissingField  = errors.New("missing field")
	ErrWrongType     = errors.New("wrong type")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrBadPath       = errors.New("bad path")
)
