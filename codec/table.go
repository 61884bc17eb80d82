package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	segjson "github.com/segmentio/encoding/json"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// tableCodec handles the three delimited row formats (CSV, TSV, pipe).
// The first record is the header; every later record becomes one object.
type tableCodec struct {
	f format.Format
}

func (c tableCodec) Format() format.Format { return c.f }

func (c tableCodec) comma() rune {
	d, _ := c.f.Delimited()
	return rune(d[0])
}

func (c tableCodec) Decode(d []byte) (*ir.Node, error) {
	r := csv.NewReader(bytes.NewReader(d))
	r.Comma = c.comma()
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	if len(records) == 0 {
		return ir.FromSlice(nil), nil
	}
	headers := records[0]
	arr := ir.FromSlice(nil)
	for _, rec := range records[1:] {
		item := ir.Object()
		for i, h := range headers {
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			item.Set(h, ReviveCell(cell))
		}
		arr.Values = append(arr.Values, item)
	}
	return arr, nil
}

// ReviveCell turns one CSV cell back into a typed node: embedded JSON is
// re-parsed, "true"/"false" become bools, "null" and the empty cell
// become null, and numeric text becomes a number unless integer parsing
// would lose a leading zero ("007" stays a string).
func ReviveCell(cell string) *ir.Node {
	if strings.HasPrefix(cell, "{") && strings.HasSuffix(cell, "}") ||
		strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		if segjson.Valid([]byte(cell)) {
			if node, err := (jsonCodec{}).Decode([]byte(cell)); err == nil {
				return node
			}
		}
	}
	switch strings.ToLower(cell) {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null", "":
		return ir.Null()
	}
	if strings.ContainsAny(cell, ".eE") {
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return ir.FromFloat(f)
		}
	} else if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) == cell {
			return ir.FromInt(i)
		}
	}
	return ir.FromString(cell)
}

// Encode writes an array of objects as delimited rows. The header is the
// union of keys in first-seen order; a top-level object is treated as a
// single row.
func (c tableCodec) Encode(node *ir.Node) ([]byte, error) {
	rows, err := tableRows(node)
	if err != nil {
		return nil, err
	}
	var headers []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, k := range row.Fields {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = c.comma()
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	rec := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			rec[i] = CellString(ir.Get(row, h))
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCodec, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return buf.Bytes(), nil
}

func tableRows(node *ir.Node) ([]*ir.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil value", ErrCodec)
	}
	switch node.Type {
	case ir.ArrayType:
		rows := make([]*ir.Node, 0, len(node.Values))
		for _, v := range node.Values {
			if v.Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: row is %s, not an object", ErrCodec, v.Type)
			}
			rows = append(rows, v)
		}
		return rows, nil
	case ir.ObjectType:
		return []*ir.Node{node}, nil
	default:
		return nil, fmt.Errorf("%w: %s is not tabular", ErrCodec, node.Type)
	}
}

// CellString renders one node as CSV cell text. Nested structures go
// through compact JSON, null becomes the empty cell.
func CellString(node *ir.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case ir.NullType:
		return ""
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		f := 0.0
		if node.Float64 != nil {
			f = *node.Float64
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case ir.StringType:
		return node.String
	default:
		d, err := node.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(d)
	}
}
