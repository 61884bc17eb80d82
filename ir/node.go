package ir

import (
	"maps"
	"slices"
)

// Node is the in-memory value model shared by every codec in the module.
// It is a tagged union: the Type field selects which of the remaining
// fields carry the value.
//
// For ObjectType nodes, Fields[i] is the string key for Values[i]; keys are
// unique and their order is significant (it drives tabular header field
// order and round-tripping). For ArrayType nodes only Values is populated.
//
// A Node tree is built fresh per call and owned by its caller; no codec
// retains or shares nodes across invocations.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: vs,
	}
	if res.Values == nil {
		res.Values = []*Node{}
	}
	return res
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// Set appends or replaces the value under key, keeping field order stable:
// an existing key keeps its position, a new key goes last.
func (y *Node) Set(key string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == key {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	return y
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// FromMap builds an object with keys in sorted order. Use Object().Set when
// the field order must be controlled.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// IsPrimitive reports whether the node is a leaf value (not array/object).
func (y *Node) IsPrimitive() bool {
	return y.Type.IsLeaf()
}
