package encode

import (
	"strings"

	"github.com/varchiver/toon-format/go-toon/ir"
)

// String encodes node to a string without the trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	sb := &strings.Builder{}
	if err := Encode(node, sb, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// MustString is String, panicking on error. Encoding only fails on a
// writer error, which strings.Builder cannot produce, so this is safe
// for any node.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
