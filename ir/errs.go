package ir

import (
	"errors"

	"github.com/varchiver/toon-format/go-toon/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
)
