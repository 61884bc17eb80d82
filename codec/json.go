package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	segjson "github.com/segmentio/encoding/json"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

type jsonCodec struct{}

func (jsonCodec) Format() format.Format { return format.JSONFormat }

// Decode validates with the fast JSON scanner, then reads the document
// through the ordered YAML path: JSON is a YAML subset, and the ordered
// map is what keeps object field order intact for round-tripping.
func (jsonCodec) Decode(d []byte) (*ir.Node, error) {
	if !segjson.Valid(d) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrCodec)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	node, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return node, nil
}

// Encode writes two-space indented JSON with object fields in node order.
func (jsonCodec) Encode(node *ir.Node) ([]byte, error) {
	compact, err := node.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	var buf bytes.Buffer
	if err := segjson.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return buf.Bytes(), nil
}
