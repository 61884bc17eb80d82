package decode

import "errors"

var (
	ErrArrayLengthMismatch   = errors.New("array length mismatch")
	ErrFieldCountMismatch    = errors.New("field count mismatch")
	ErrInvalidArraySyntax    = errors.New("invalid array syntax")
	ErrInvalidKeyValueSyntax = errors.New("invalid key-value syntax")
	ErrBadIndent             = errors.New("unexpected indentation")
)
