package codec

import (
	"errors"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// ErrCodec wraps every decode or encode failure so callers can test for
// the codec layer with errors.Is.
var ErrCodec = errors.New("codec error")

// A Codec converts between one wire format and ir nodes.
type Codec interface {
	Format() format.Format
	Decode(d []byte) (*ir.Node, error)
	Encode(node *ir.Node) ([]byte, error)
}

// For returns the codec for f, if one is registered.
func For(f format.Format) (Codec, bool) {
	for _, c := range All() {
		if c.Format() == f {
			return c, true
		}
	}
	return nil, false
}

// All returns every codec in format priority order.
func All() []Codec {
	return []Codec{
		toonCodec{},
		jsonCodec{},
		xmlCodec{},
		tableCodec{format.CSVFormat},
		tableCodec{format.TSVFormat},
		tableCodec{format.PipeFormat},
		yamlCodec{},
		iniCodec{},
		propertiesCodec{},
		kvCodec{},
	}
}
