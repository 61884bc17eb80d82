package codec

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

type yamlCodec struct{}

func (yamlCodec) Format() format.Format { return format.YAMLFormat }

func (yamlCodec) Decode(d []byte) (*ir.Node, error) {
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

func (yamlCodec) Encode(node *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return d, nil
}

// fromYAML converts the ordered-map representation goccy produces into
// nodes. MapSlice keeps document key order, which is why plain
// map[string]any only appears on nested defaults and falls back to
// sorted order.
func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return ir.FromFloat(float64(t)), nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case string:
		return ir.FromString(t), nil
	case []any:
		arr := ir.FromSlice(nil)
		for _, e := range t {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, n)
		}
		return arr, nil
	case yaml.MapSlice:
		obj := ir.Object()
		for _, item := range t {
			key := fmt.Sprintf("%v", item.Key)
			n, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, n)
		}
		return obj, nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(t))
		for k, e := range t {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value %T", v)
	}
}

// toYAML converts a node to the value shape goccy marshals, using
// MapSlice so field order survives.
func toYAML(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil && !math.IsNaN(*node.Float64) && !math.IsInf(*node.Float64, 0) {
			return *node.Float64
		}
		return nil
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		arr := make([]any, len(node.Values))
		for i, v := range node.Values {
			arr[i] = toYAML(v)
		}
		return arr
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i, k := range node.Fields {
			ms[i] = yaml.MapItem{Key: k, Value: toYAML(node.Values[i])}
		}
		return ms
	default:
		return nil
	}
}
