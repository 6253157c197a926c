package metainfo

import "errors"

var (
	ErrPieces           = errors.New("pieces length is not a multiple of 20")
	ErrBadAlgorithm     = errors.New("bad digest algorithm")
	ErrLengthAndFiles   = errors.New("info has both length and files")
	ErrNoLengthNorFiles = errors.New("info has neither length nor files")
)
