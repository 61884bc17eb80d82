package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// xmlCodec maps XML onto objects: element attributes go under
// "@attributes", text content under "@text", and repeated child tags
// collapse into an array.
type xmlCodec struct{}

func (xmlCodec) Format() format.Format { return format.XMLFormat }

func (xmlCodec) Decode(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCodec, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			node, err := decodeElement(dec, start)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCodec, err)
			}
			return node, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*ir.Node, error) {
	obj := ir.Object()
	if len(start.Attr) > 0 {
		attrs := ir.Object()
		for _, a := range start.Attr {
			attrs.Set(a.Name.Local, ir.FromString(a.Value))
		}
		obj.Set("@attributes", attrs)
	}
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			addChild(obj, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if s := strings.TrimSpace(text.String()); s != "" {
				// text slots in before the children, matching its
				// position in a leaf element
				withText := ir.Object()
				if a := ir.Get(obj, "@attributes"); a != nil {
					withText.Set("@attributes", a)
				}
				withText.Set("@text", ir.FromString(s))
				for i, k := range obj.Fields {
					if k != "@attributes" {
						withText.Set(k, obj.Values[i])
					}
				}
				return withText, nil
			}
			return obj, nil
		}
	}
}

// addChild appends a child element, converting to an array on the second
// occurrence of the same tag.
func addChild(obj *ir.Node, tag string, child *ir.Node) {
	existing := ir.Get(obj, tag)
	if existing == nil {
		obj.Set(tag, child)
		return
	}
	if existing.Type == ir.ArrayType {
		existing.Values = append(existing.Values, child)
		return
	}
	obj.Set(tag, ir.FromSlice([]*ir.Node{existing, child}))
}

// Encode renders an object as XML. An object with a single object field
// uses that field as the document root; anything else is wrapped in
// <root>.
func (xmlCodec) Encode(node *ir.Node) ([]byte, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: XML output needs an object", ErrCodec)
	}
	tag := "root"
	body := node
	if len(node.Fields) == 1 && node.Values[0].Type == ir.ObjectType {
		tag = node.Fields[0]
		body = node.Values[0]
	}
	var b bytes.Buffer
	b.WriteString(xml.Header)
	if err := encodeElement(&b, tag, body, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return b.Bytes(), nil
}

func encodeElement(b *bytes.Buffer, tag string, node *ir.Node, depth int) error {
	pad := strings.Repeat("  ", depth)
	if node == nil || node.IsPrimitive() {
		b.WriteString(pad + "<" + tag + ">")
		if err := xml.EscapeText(b, []byte(CellString(node))); err != nil {
			return err
		}
		b.WriteString("</" + tag + ">\n")
		return nil
	}
	if node.Type == ir.ArrayType {
		for _, v := range node.Values {
			if err := encodeElement(b, tag, v, depth); err != nil {
				return err
			}
		}
		return nil
	}
	b.WriteString(pad + "<" + tag)
	if attrs := ir.Get(node, "@attributes"); attrs != nil && attrs.Type == ir.ObjectType {
		for i, k := range attrs.Fields {
			b.WriteString(" " + k + `="`)
			if err := xml.EscapeText(b, []byte(CellString(attrs.Values[i]))); err != nil {
				return err
			}
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
	text := ir.Get(node, "@text")
	onlyText := true
	for _, k := range node.Fields {
		if k != "@attributes" && k != "@text" {
			onlyText = false
		}
	}
	if onlyText {
		if text != nil {
			if err := xml.EscapeText(b, []byte(CellString(text))); err != nil {
				return err
			}
		}
		b.WriteString("</" + tag + ">\n")
		return nil
	}
	b.WriteString("\n")
	if text != nil {
		b.WriteString(pad + "  ")
		if err := xml.EscapeText(b, []byte(CellString(text))); err != nil {
			return err
		}
		b.WriteString("\n")
	}
	for i, k := range node.Fields {
		if k == "@attributes" || k == "@text" {
			continue
		}
		if err := encodeElement(b, k, node.Values[i], depth+1); err != nil {
			return err
		}
	}
	b.WriteString(pad + "</" + tag + ">\n")
	return nil
}
