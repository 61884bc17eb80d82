package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/varchiver/toon-format/go-toon/ir"
	"github.com/varchiver/toon-format/go-toon/token"
)

type EncState struct {
	indent       int
	delimiter    string
	lengthMarker bool
}

// Encode writes node to w in TOON text form. The zero value of every
// option applies: two-space indent, comma delimiter, no length marker.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:    2,
		delimiter: ",",
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.indent = 2
	}
	if es.delimiter == "" {
		es.delimiter = ","
	}
	return encodeRoot(node, w, es)
}

func encodeRoot(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeLine(w, es, 0, "null")
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeFields(node, w, es, 0)
	case ir.ArrayType:
		return encodeArray("", node, w, es, 0)
	default:
		return writeLine(w, es, 0, encodePrimitive(node, es))
	}
}

func writeLine(w io.Writer, es *EncState, level int, s string) error {
	_, err := io.WriteString(w, strings.Repeat(" ", level*es.indent)+s+"\n")
	return err
}

func marker(es *EncState) string {
	if es.lengthMarker {
		return "#"
	}
	return ""
}

// encodeFields writes each field of an object, one entry per line, with
// nested blocks indented one unit deeper.
func encodeFields(obj *ir.Node, w io.Writer, es *EncState, level int) error {
	for i, key := range obj.Fields {
		val := obj.Values[i]
		k := token.QuoteKey(key)
		switch val.Type {
		case ir.ObjectType:
			// an empty nested object is just a bare key line
			if err := writeLine(w, es, level, k+":"); err != nil {
				return err
			}
			if len(val.Fields) == 0 {
				continue
			}
			if err := encodeFields(val, w, es, level+1); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := encodeArray(k, val, w, es, level); err != nil {
				return err
			}
		default:
			if err := writeLine(w, es, level, k+": "+encodePrimitive(val, es)); err != nil {
				return err
			}
		}
	}
	return nil
}

type arrayForm int

const (
	emptyForm arrayForm = iota
	tabularForm
	inlineForm
	listForm
)

// selectForm picks the array representation, in priority order: tabular
// for a uniform array of flat objects, inline when every item is a
// primitive, list otherwise.
func selectForm(arr *ir.Node) arrayForm {
	if len(arr.Values) == 0 {
		return emptyForm
	}
	if tabularFields(arr) != nil {
		return tabularForm
	}
	for _, v := range arr.Values {
		if !v.IsPrimitive() {
			return listForm
		}
	}
	return inlineForm
}

// tabularFields returns the header field list (the first item's key order)
// when every item is an object with the same key set and only primitive
// values, and nil otherwise.
func tabularFields(arr *ir.Node) []string {
	first := arr.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil
	}
	keySet := make(map[string]bool, len(first.Fields))
	for _, k := range first.Fields {
		keySet[k] = true
	}
	for _, item := range arr.Values {
		if item.Type != ir.ObjectType || len(item.Fields) != len(first.Fields) {
			return nil
		}
		for i, k := range item.Fields {
			if !keySet[k] {
				return nil
			}
			if !item.Values[i].IsPrimitive() {
				return nil
			}
		}
	}
	return first.Fields
}

// arrayHeader composes the declaration line for an array under key (which
// may be empty at the root) without trailing data.
func arrayHeader(key string, arr *ir.Node, es *EncState, form arrayForm) string {
	n := len(arr.Values)
	switch form {
	case emptyForm:
		return key + "[" + marker(es) + "0]:"
	case tabularForm:
		fields := tabularFields(arr)
		delimTag := ""
		if es.delimiter != "," {
			delimTag = es.delimiter
		}
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = token.QuoteKey(f)
		}
		return key + "[" + marker(es) + strconv.Itoa(n) + delimTag + "]{" +
			strings.Join(quoted, es.delimiter) + "}:"
	default:
		return key + "[" + marker(es) + strconv.Itoa(n) + "]:"
	}
}

func encodeArray(key string, arr *ir.Node, w io.Writer, es *EncState, level int) error {
	form := selectForm(arr)
	switch form {
	case emptyForm:
		return writeLine(w, es, level, arrayHeader(key, arr, es, form))
	case tabularForm:
		if err := writeLine(w, es, level, arrayHeader(key, arr, es, form)); err != nil {
			return err
		}
		return encodeTabularRows(arr, w, es, level+1)
	case inlineForm:
		vals := make([]string, len(arr.Values))
		for i, v := range arr.Values {
			vals[i] = encodePrimitive(v, es)
		}
		header := arrayHeader(key, arr, es, form)
		return writeLine(w, es, level, header+" "+strings.Join(vals, es.delimiter))
	default:
		if err := writeLine(w, es, level, arrayHeader(key, arr, es, form)); err != nil {
			return err
		}
		for _, item := range arr.Values {
			if err := encodeListItem(item, w, es, level+1); err != nil {
				return err
			}
		}
		return nil
	}
}

func encodeTabularRows(arr *ir.Node, w io.Writer, es *EncState, level int) error {
	fields := tabularFields(arr)
	row := make([]string, len(fields))
	for _, item := range arr.Values {
		for i, f := range fields {
			row[i] = encodePrimitive(ir.Get(item, f), es)
		}
		if err := writeLine(w, es, level, strings.Join(row, es.delimiter)); err != nil {
			return err
		}
	}
	return nil
}

// encodeListItem writes one "- " block. Object items place their first
// field on the hyphen line; remaining fields follow one unit deeper, and
// a nested block under the first field goes two units deeper.
func encodeListItem(item *ir.Node, w io.Writer, es *EncState, level int) error {
	switch item.Type {
	case ir.ObjectType:
		if len(item.Fields) == 0 {
			return writeLine(w, es, level, "-")
		}
		k := token.QuoteKey(item.Fields[0])
		first := item.Values[0]
		switch first.Type {
		case ir.ObjectType:
			if err := writeLine(w, es, level, "- "+k+":"); err != nil {
				return err
			}
			if len(first.Fields) > 0 {
				if err := encodeFields(first, w, es, level+2); err != nil {
					return err
				}
			}
		case ir.ArrayType:
			form := selectForm(first)
			header := arrayHeader(k, first, es, form)
			switch form {
			case inlineForm:
				vals := make([]string, len(first.Values))
				for i, v := range first.Values {
					vals[i] = encodePrimitive(v, es)
				}
				if err := writeLine(w, es, level, "- "+header+" "+strings.Join(vals, es.delimiter)); err != nil {
					return err
				}
			case tabularForm:
				if err := writeLine(w, es, level, "- "+header); err != nil {
					return err
				}
				if err := encodeTabularRows(first, w, es, level+2); err != nil {
					return err
				}
			case listForm:
				if err := writeLine(w, es, level, "- "+header); err != nil {
					return err
				}
				for _, sub := range first.Values {
					if err := encodeListItem(sub, w, es, level+2); err != nil {
						return err
					}
				}
			default:
				if err := writeLine(w, es, level, "- "+header); err != nil {
					return err
				}
			}
		default:
			if err := writeLine(w, es, level, "- "+k+": "+encodePrimitive(first, es)); err != nil {
				return err
			}
		}
		rest := &ir.Node{
			Type:   ir.ObjectType,
			Fields: item.Fields[1:],
			Values: item.Values[1:],
		}
		return encodeFields(rest, w, es, level+1)
	case ir.ArrayType:
		return encodeArray("- ", item, w, es, level)
	default:
		return writeLine(w, es, level, "- "+encodePrimitive(item, es))
	}
}

func encodePrimitive(node *ir.Node, es *EncState) string {
	if node == nil {
		return "null"
	}
	switch node.Type {
	case ir.NullType:
		return "null"
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
			return "null"
		}
		v := strconv.FormatFloat(f, 'f', -1, 64)
		// whole floats keep a float marker so they decode back as floats;
		// very large magnitudes take the exponent form, which also keeps
		// them parseable
		if !strings.ContainsAny(v, ".eE") {
			if g := strconv.FormatFloat(f, 'g', -1, 64); strings.ContainsAny(g, ".eE") {
				v = g
			} else {
				v += ".0"
			}
		}
		return v
	case ir.StringType:
		if token.NeedsQuote(node.String, es.delimiter) {
			return token.Quote(node.String)
		}
		return node.String
	default:
		panic(fmt.Sprintf("cannot encode %s as primitive", node.Type))
	}
}
