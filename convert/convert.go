package convert

import (
	"fmt"

	"github.com/varchiver/toon-format/go-toon/codec"
	"github.com/varchiver/toon-format/go-toon/decode"
	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

func jsonCodec() codec.Codec {
	c, _ := codec.For(format.JSONFormat)
	return c
}

// JSONToTOON converts a JSON document to TOON text.
func JSONToTOON(jsonData []byte, opts ...encode.EncodeOption) (string, error) {
	node, err := jsonCodec().Decode(jsonData)
	if err != nil {
		return "", err
	}
	return encode.String(node, opts...)
}

// TOONToJSON converts TOON text to two-space indented JSON.
func TOONToJSON(toonData []byte) ([]byte, error) {
	node, err := decodeTOON(toonData)
	if err != nil {
		return nil, err
	}
	return jsonCodec().Encode(node)
}

func decodeTOON(toonData []byte) (*ir.Node, error) {
	res, err := decode.Decode(toonData)
	if err != nil {
		return nil, fmt.Errorf("TOON decode: %w", err)
	}
	return res.Node, nil
}
