package token

import (
	"strconv"
	"strings"

	"github.com/varchiver/toon-format/go-toon/ir"
)

// ParsePrimitive converts one scalar token to a node:
//
//	""            -> empty string
//	null          -> null
//	true/false    -> bool
//	"..."         -> unescaped string
//	digits        -> int64
//	digits with . or exponent -> float64
//	anything else -> literal string
//
// The only possible error is a malformed quoted string.
func ParsePrimitive(v string) (*ir.Node, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return ir.FromString(""), nil
	}
	switch v {
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if v[0] == '"' {
		s, err := Unquote(v)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if hasFloatMarker(v) {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return ir.FromFloat(f), nil
		}
	}
	return ir.FromString(v), nil
}

// ParseKey converts a raw key token: quoted keys are unescaped, bare keys
// are returned as-is.
func ParseKey(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v != "" && v[0] == '"' {
		return Unquote(v)
	}
	return v, nil
}
