package decode

import (
	"fmt"
	"strings"

	"github.com/varchiver/toon-format/go-toon/debug"
	"github.com/varchiver/toon-format/go-toon/ir"
	"github.com/varchiver/toon-format/go-toon/token"
)

// Decode parses TOON text. In the default recovery mode structural
// violations become warnings on the Result; with Strict the first
// violation fails the whole decode. When even recovery cannot produce a
// tree, top-level key-value pairs are salvaged and Meta.Partial is set.
func Decode(d []byte, opts ...DecodeOption) (*Result, error) {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	s := &session{
		lines: strings.Split(string(d), "\n"),
		opts:  o,
	}
	s.meta.LineCount = len(s.lines)
	s.meta.ArrayItems = map[string]int{}
	pi := 0
	node, err := s.parseDocument(&pi)
	if err != nil {
		if o.strict || !o.recovery {
			return nil, err
		}
		if debug.Decode() {
			debug.Logf("decode: falling back to flat scan: %v", err)
		}
		flat, ok := s.flatScan()
		if !ok {
			return nil, err
		}
		s.meta.Partial = true
		return &Result{Node: flat, Meta: s.meta, Warnings: s.warnings}, nil
	}
	if !o.strict && o.recovery && len(s.warnings) > 0 &&
		node.Type == ir.ObjectType && len(node.Fields) == 0 {
		// everything was rejected in place; salvage what a flat scan can
		if flat, ok := s.flatScan(); ok {
			s.meta.Partial = true
			node = flat
		}
	}
	return &Result{Node: node, Meta: s.meta, Warnings: s.warnings}, nil
}

type session struct {
	lines    []string
	opts     *decOpts
	meta     Metadata
	warnings []string
}

// violate either fails (strict) or records a warning and lets the caller
// continue (recovery).
func (s *session) violate(i int, err error) error {
	if s.opts.strict || !s.opts.recovery {
		return fmt.Errorf("line %d: %w", i+1, err)
	}
	s.warnings = append(s.warnings, fmt.Sprintf("line %d: %v", i+1, err))
	return nil
}

func (s *session) structure(kind string) {
	for _, k := range s.meta.Structures {
		if k == kind {
			return
		}
	}
	s.meta.Structures = append(s.meta.Structures, kind)
}

// skip advances past blank and comment lines, reporting whether content
// remains.
func (s *session) skip(pi *int) bool {
	for *pi < len(s.lines) {
		t := strings.TrimSpace(s.lines[*pi])
		if t == "" || strings.HasPrefix(t, "#") {
			*pi++
			continue
		}
		return true
	}
	return false
}

func (s *session) level(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n / s.opts.indent
}

func (s *session) parseDocument(pi *int) (*ir.Node, error) {
	if !s.skip(pi) {
		return ir.Object(), nil
	}
	text := strings.TrimSpace(s.lines[*pi])
	if h, ok := parseArrayHeader(text); ok && h.key == "" {
		hline := *pi
		*pi++
		return s.parseArrayBody(h, pi, s.level(s.lines[hline]), hline)
	}
	if findUnquoted(text, ':') < 0 && !strings.HasPrefix(text, "- ") {
		scalarAt := *pi
		*pi++
		if !s.skip(pi) {
			return token.ParsePrimitive(text)
		}
		*pi = scalarAt
	}
	return s.parseObject(pi, 0)
}

// parseObject consumes entries at exactly the given level, returning on
// the first dedent. The cursor is left on the dedented line.
func (s *session) parseObject(pi *int, level int) (*ir.Node, error) {
	obj := ir.Object()
	for s.skip(pi) {
		line := s.lines[*pi]
		lvl := s.level(line)
		if lvl < level {
			return obj, nil
		}
		if lvl > level {
			if err := s.violate(*pi, ErrBadIndent); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		text := strings.TrimSpace(line)
		if h, ok := parseArrayHeader(text); ok {
			hline := *pi
			*pi++
			arr, err := s.parseArrayBody(h, pi, lvl, hline)
			if err != nil {
				return nil, err
			}
			obj.Set(h.key, arr)
			continue
		}
		ci := findUnquoted(text, ':')
		if ci <= 0 {
			if err := s.violate(*pi, ErrInvalidKeyValueSyntax); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		key, err := token.ParseKey(text[:ci])
		if err != nil || key == "" {
			if verr := s.violate(*pi, ErrInvalidKeyValueSyntax); verr != nil {
				return nil, verr
			}
			*pi++
			continue
		}
		rest := strings.TrimSpace(text[ci+1:])
		*pi++
		if rest == "" {
			child, err := s.parseObject(pi, level+1)
			if err != nil {
				return nil, err
			}
			if len(child.Fields) > 0 {
				s.structure("nested_object")
			}
			obj.Set(key, child)
			continue
		}
		val, err := token.ParsePrimitive(rest)
		if err != nil {
			if verr := s.violate(*pi-1, err); verr != nil {
				return nil, verr
			}
			continue
		}
		s.structure("key_value")
		obj.Set(key, val)
	}
	return obj, nil
}

// parseArrayBody dispatches on the header shape. level is the level the
// header line sat at; body lines are one deeper.
func (s *session) parseArrayBody(h *arrayHeader, pi *int, level, hline int) (*ir.Node, error) {
	switch {
	case h.fields != nil:
		return s.parseTabular(h, pi, level, hline)
	case h.inline != "":
		return s.parseInline(h, hline)
	case h.n == 0:
		s.structure("simple_array")
		s.countItems(h.key, 0)
		return ir.FromSlice(nil), nil
	}
	// no inline data: the first body line decides between list form,
	// one-value-per-line simple form, and a declared-but-empty array
	peek := *pi
	if s.skip(&peek) && s.level(s.lines[peek]) > level {
		t := strings.TrimSpace(s.lines[peek])
		if t == "-" || strings.HasPrefix(t, "- ") {
			return s.parseList(h, pi, level, hline)
		}
		return s.parseSimple(h, pi, level, hline)
	}
	if err := s.checkLength(h, 0, hline); err != nil {
		return nil, err
	}
	s.structure("simple_array")
	s.countItems(h.key, 0)
	return ir.FromSlice(nil), nil
}

// parseSimple reads the multi-line simple form: one primitive value per
// body line.
func (s *session) parseSimple(h *arrayHeader, pi *int, level, hline int) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	for s.skip(pi) {
		line := s.lines[*pi]
		if s.level(line) <= level {
			break
		}
		v, err := token.ParsePrimitive(strings.TrimSpace(line))
		if err != nil {
			if verr := s.violate(*pi, err); verr != nil {
				return nil, verr
			}
			v = ir.Null()
		}
		arr.Values = append(arr.Values, v)
		*pi++
	}
	if err := s.checkLength(h, len(arr.Values), hline); err != nil {
		return nil, err
	}
	s.structure("simple_array")
	s.countItems(h.key, len(arr.Values))
	return arr, nil
}

func (s *session) checkLength(h *arrayHeader, got, hline int) error {
	if h.n >= 0 && got != h.n {
		return s.violate(hline, fmt.Errorf("%w: declared %d, found %d", ErrArrayLengthMismatch, h.n, got))
	}
	return nil
}

func (s *session) countItems(key string, n int) {
	if key == "" {
		key = "root"
	}
	s.meta.ArrayItems[key] = n
}

func (s *session) parseTabular(h *arrayHeader, pi *int, level, hline int) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	// without an explicit tag the row delimiter comes from the first data
	// line, not from the header's field list
	delim := h.delim
	for s.skip(pi) {
		line := s.lines[*pi]
		lvl := s.level(line)
		if lvl <= level {
			break
		}
		row := strings.TrimSpace(line)
		if delim == "" {
			delim = sniffDelimiter(row)
		}
		cells := splitDelimited(row, delim)
		if len(cells) != len(h.fields) {
			err := s.violate(*pi, fmt.Errorf("%w: %d fields, %d cells",
				ErrFieldCountMismatch, len(h.fields), len(cells)))
			if err != nil {
				return nil, err
			}
		}
		item := ir.Object()
		for i, f := range h.fields {
			if i < len(cells) {
				v, err := token.ParsePrimitive(cells[i])
				if err != nil {
					if verr := s.violate(*pi, err); verr != nil {
						return nil, verr
					}
					v = ir.Null()
				}
				item.Set(f, v)
			} else {
				item.Set(f, ir.Null())
			}
		}
		arr.Values = append(arr.Values, item)
		*pi++
	}
	if err := s.checkLength(h, len(arr.Values), hline); err != nil {
		return nil, err
	}
	s.structure("tabular_array")
	s.countItems(h.key, len(arr.Values))
	return arr, nil
}

func (s *session) parseInline(h *arrayHeader, hline int) (*ir.Node, error) {
	delim := h.delim
	if delim == "" {
		delim = sniffDelimiter(h.inline)
	}
	arr := ir.FromSlice(nil)
	for _, cell := range splitDelimited(h.inline, delim) {
		v, err := token.ParsePrimitive(cell)
		if err != nil {
			if verr := s.violate(hline, err); verr != nil {
				return nil, verr
			}
			v = ir.Null()
		}
		arr.Values = append(arr.Values, v)
	}
	if err := s.checkLength(h, len(arr.Values), hline); err != nil {
		return nil, err
	}
	s.structure("simple_array")
	s.countItems(h.key, len(arr.Values))
	return arr, nil
}

func (s *session) parseList(h *arrayHeader, pi *int, level, hline int) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	for s.skip(pi) {
		line := s.lines[*pi]
		lvl := s.level(line)
		if lvl <= level {
			break
		}
		text := strings.TrimSpace(line)
		if text == "-" {
			// a bare hyphen is an empty object item
			*pi++
			arr.Values = append(arr.Values, ir.Object())
			continue
		}
		if !strings.HasPrefix(text, "- ") {
			if err := s.violate(*pi, ErrInvalidArraySyntax); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		item, err := s.parseListItem(text[2:], pi, lvl)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, item)
	}
	if err := s.checkLength(h, len(arr.Values), hline); err != nil {
		return nil, err
	}
	s.structure("list_array")
	s.countItems(h.key, len(arr.Values))
	return arr, nil
}

// parseListItem reads one "- " block. content is the text after the
// hyphen; hlvl is the hyphen line's level. Continuation fields of an
// object item sit one level deeper, nested blocks opened on the hyphen
// line two levels deeper.
func (s *session) parseListItem(content string, pi *int, hlvl int) (*ir.Node, error) {
	hline := *pi
	*pi++
	if h, ok := parseArrayHeader(content); ok {
		arr, err := s.parseArrayBody(h, pi, hlvl+1, hline)
		if err != nil {
			return nil, err
		}
		if h.key == "" {
			return arr, nil
		}
		item := ir.Object().Set(h.key, arr)
		return s.mergeItemFields(item, pi, hlvl)
	}
	ci := findUnquoted(content, ':')
	if ci <= 0 {
		v, err := token.ParsePrimitive(content)
		if err != nil {
			if verr := s.violate(hline, err); verr != nil {
				return nil, verr
			}
			return ir.Null(), nil
		}
		return v, nil
	}
	key, err := token.ParseKey(content[:ci])
	if err != nil || key == "" {
		if verr := s.violate(hline, ErrInvalidKeyValueSyntax); verr != nil {
			return nil, verr
		}
		return ir.Object(), nil
	}
	item := ir.Object()
	rest := strings.TrimSpace(content[ci+1:])
	if rest == "" {
		child, err := s.parseObject(pi, hlvl+2)
		if err != nil {
			return nil, err
		}
		item.Set(key, child)
	} else {
		v, err := token.ParsePrimitive(rest)
		if err != nil {
			if verr := s.violate(hline, err); verr != nil {
				return nil, verr
			}
			v = ir.Null()
		}
		item.Set(key, v)
	}
	return s.mergeItemFields(item, pi, hlvl)
}

// mergeItemFields folds the item's continuation lines (one level below
// the hyphen) into the object built from the hyphen line.
func (s *session) mergeItemFields(item *ir.Node, pi *int, hlvl int) (*ir.Node, error) {
	more, err := s.parseObject(pi, hlvl+1)
	if err != nil {
		return nil, err
	}
	for i, k := range more.Fields {
		item.Set(k, more.Values[i])
	}
	return item, nil
}
