package codec

import (
	"fmt"
	"strings"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// kvCodec handles flat "key=value" files. Values stay strings; revival
// is the converter's business, not this codec's.
type kvCodec struct{}

func (kvCodec) Format() format.Format { return format.KeyValueFormat }

func (kvCodec) Decode(d []byte) (*ir.Node, error) {
	obj := ir.Object()
	for _, line := range strings.Split(string(d), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		obj.Set(strings.TrimSpace(k), ir.FromString(strings.TrimSpace(v)))
	}
	return obj, nil
}

func (kvCodec) Encode(node *ir.Node) ([]byte, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: key-value output needs an object", ErrCodec)
	}
	var b strings.Builder
	for i, k := range node.Fields {
		v := node.Values[i]
		if !v.IsPrimitive() {
			return nil, fmt.Errorf("%w: %q is not a primitive", ErrCodec, k)
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(CellString(v))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// iniCodec handles sectioned configuration. Sections become nested
// objects; keys before the first section land at the top level.
type iniCodec struct{}

func (iniCodec) Format() format.Format { return format.INIFormat }

func (iniCodec) Decode(d []byte) (*ir.Node, error) {
	root := ir.Object()
	section := root
	for i, line := range strings.Split(string(d), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("%w: line %d: empty section name", ErrCodec, i+1)
			}
			section = ir.Object()
			root.Set(name, section)
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected key=value", ErrCodec, i+1)
		}
		section.Set(strings.TrimSpace(k), ir.FromString(strings.TrimSpace(v)))
	}
	return root, nil
}

func (iniCodec) Encode(node *ir.Node) ([]byte, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: INI output needs an object", ErrCodec)
	}
	var top, sections strings.Builder
	for i, k := range node.Fields {
		v := node.Values[i]
		if v.Type == ir.ObjectType {
			sections.WriteString("[" + k + "]\n")
			for j, sk := range v.Fields {
				sv := v.Values[j]
				if !sv.IsPrimitive() {
					return nil, fmt.Errorf("%w: %s.%s is not a primitive", ErrCodec, k, sk)
				}
				sections.WriteString(sk + " = " + CellString(sv) + "\n")
			}
			sections.WriteString("\n")
			continue
		}
		if !v.IsPrimitive() {
			return nil, fmt.Errorf("%w: %q is not a primitive", ErrCodec, k)
		}
		top.WriteString(k + " = " + CellString(v) + "\n")
	}
	out := top.String()
	if out != "" && sections.Len() > 0 {
		out += "\n"
	}
	out += strings.TrimSuffix(sections.String(), "\n")
	if !strings.HasSuffix(out, "\n") && out != "" {
		out += "\n"
	}
	return []byte(out), nil
}

// propertiesCodec handles Java-style properties, where both '=' and ':'
// separate key from value and the earlier separator wins.
type propertiesCodec struct{}

func (propertiesCodec) Format() format.Format { return format.PropertiesFormat }

func (propertiesCodec) Decode(d []byte) (*ir.Node, error) {
	obj := ir.Object()
	for _, line := range strings.Split(string(d), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		eq := strings.Index(line, "=")
		co := strings.Index(line, ":")
		sep := eq
		if sep < 0 || (co >= 0 && co < sep) {
			sep = co
		}
		if sep < 0 {
			continue
		}
		obj.Set(strings.TrimSpace(line[:sep]), ir.FromString(strings.TrimSpace(line[sep+1:])))
	}
	return obj, nil
}

func (propertiesCodec) Encode(node *ir.Node) ([]byte, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: properties output needs an object", ErrCodec)
	}
	var b strings.Builder
	for i, k := range node.Fields {
		v := node.Values[i]
		if !v.IsPrimitive() {
			return nil, fmt.Errorf("%w: %q is not a primitive", ErrCodec, k)
		}
		b.WriteString(k + "=" + CellString(v) + "\n")
	}
	return []byte(b.String()), nil
}
