package codec

import (
	"fmt"

	"github.com/varchiver/toon-format/go-toon/decode"
	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// toonCodec adapts the decode and encode packages to the Codec shape.
// Callers that need warnings and metadata use those packages directly;
// this wrapper exists so TOON takes part in uniform codec dispatch.
type toonCodec struct{}

func (toonCodec) Format() format.Format { return format.TOONFormat }

func (toonCodec) Decode(d []byte) (*ir.Node, error) {
	res, err := decode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return res.Node, nil
}

func (toonCodec) Encode(node *ir.Node) ([]byte, error) {
	s, err := encode.String(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return []byte(s + "\n"), nil
}
