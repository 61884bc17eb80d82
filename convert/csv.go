package convert

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"

	"github.com/varchiver/toon-format/go-toon/codec"
	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// ErrNotTabular is returned when a document has no array-of-objects
// shape to lay out as rows.
var ErrNotTabular = errors.New("structure not suitable for CSV conversion")

// JSONToCSV converts a JSON document to CSV. A top-level array of
// objects maps directly to rows; an object containing exactly one such
// array uses it; multiple arrays are merged with a "table" column naming
// the source array; an object with none becomes a single row. Columns
// are the sorted union of keys, nested values flatten to compact JSON.
func JSONToCSV(jsonData []byte) ([]byte, error) {
	node, err := jsonCodec().Decode(jsonData)
	if err != nil {
		return nil, err
	}
	return nodeToCSV(node)
}

// TOONToCSV converts TOON text to CSV via the same row layout.
func TOONToCSV(toonData []byte) ([]byte, error) {
	node, err := decodeTOON(toonData)
	if err != nil {
		return nil, err
	}
	return nodeToCSV(node)
}

// CSVToJSON converts CSV to JSON, reviving cell types and wrapping the
// rows under tableName.
func CSVToJSON(csvData []byte, tableName string) ([]byte, error) {
	node, err := csvToNode(csvData, tableName)
	if err != nil {
		return nil, err
	}
	return jsonCodec().Encode(node)
}

// CSVToTOON converts CSV to TOON, wrapping the rows under tableName so
// the result encodes as one tabular array.
func CSVToTOON(csvData []byte, tableName string, opts ...encode.EncodeOption) (string, error) {
	node, err := csvToNode(csvData, tableName)
	if err != nil {
		return "", err
	}
	return encode.String(node, opts...)
}

func csvToNode(csvData []byte, tableName string) (*ir.Node, error) {
	c, _ := codec.For(format.CSVFormat)
	rows, err := c.Decode(csvData)
	if err != nil {
		return nil, err
	}
	if tableName == "" {
		tableName = "data"
	}
	return ir.Object().Set(tableName, rows), nil
}

func nodeToCSV(node *ir.Node) ([]byte, error) {
	rows, err := csvRows(node)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	keySet := map[string]bool{}
	for _, row := range rows {
		for _, k := range row.Fields {
			keySet[k] = true
		}
	}
	headers := make([]string, 0, len(keySet))
	for k := range keySet {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	rec := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			rec[i] = codec.CellString(ir.Get(row, h))
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvRows picks the rows to lay out, mirroring the JSONToCSV contract.
func csvRows(node *ir.Node) ([]*ir.Node, error) {
	if node == nil {
		return nil, ErrNotTabular
	}
	switch node.Type {
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return nil, nil
		}
		rows := make([]*ir.Node, 0, len(node.Values))
		for _, v := range node.Values {
			if v.Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: array item is %s", ErrNotTabular, v.Type)
			}
			rows = append(rows, v)
		}
		return rows, nil
	case ir.ObjectType:
		var arrayKeys []string
		for i, k := range node.Fields {
			v := node.Values[i]
			if v.Type == ir.ArrayType && len(v.Values) > 0 && v.Values[0].Type == ir.ObjectType {
				arrayKeys = append(arrayKeys, k)
			}
		}
		switch len(arrayKeys) {
		case 0:
			return []*ir.Node{node}, nil
		case 1:
			return csvRows(ir.Get(node, arrayKeys[0]))
		default:
			// several tables merge into one sheet with a "table" column
			// naming the source array
			var rows []*ir.Node
			for _, k := range arrayKeys {
				for _, item := range ir.Get(node, k).Values {
					if item.Type != ir.ObjectType {
						return nil, fmt.Errorf("%w: array item is %s", ErrNotTabular, item.Type)
					}
					merged := ir.Object().Set("table", ir.FromString(k))
					for j, f := range item.Fields {
						merged.Set(f, item.Values[j])
					}
					rows = append(rows, merged)
				}
			}
			return rows, nil
		}
	default:
		return nil, ErrNotTabular
	}
}
