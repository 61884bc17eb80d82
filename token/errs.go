package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape")
)
