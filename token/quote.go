package token

import "strings"

// NeedsQuote reports whether a string value must be double-quoted when
// encoded with the given active delimiter. Quoting triggers on anything
// that would otherwise read back as a different token: surrounding
// whitespace, the delimiter itself, structural characters, keyword and
// numeric look-alikes, a leading list marker, and control characters.
func NeedsQuote(v, delim string) bool {
	if v == "" {
		return true
	}
	if strings.HasPrefix(v, " ") || strings.HasSuffix(v, " ") {
		return true
	}
	if delim != "" && strings.Contains(v, delim) {
		return true
	}
	if strings.ContainsAny(v, ":\"\\") {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if LooksNumeric(v) {
		return true
	}
	if looksStructural(v) {
		return true
	}
	if strings.HasPrefix(v, "- ") {
		return true
	}
	for _, r := range v {
		if r < 0x20 {
			return true
		}
	}
	return false
}

// looksStructural reports whether the whole string reads like a bracketed
// token ([...] or {...}).
func looksStructural(v string) bool {
	n := len(v)
	if n < 2 {
		return false
	}
	if v[0] == '[' && v[n-1] == ']' {
		return true
	}
	if v[0] == '{' && v[n-1] == '}' {
		return true
	}
	return false
}

// Quote double-quotes v, escaping backslash, double quote, newline, tab
// and carriage return, in that order of concern: a backslash already in
// the input must not be re-read as starting an escape.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			d = append(d, '\\', '\\')
		case '"':
			d = append(d, '\\', '"')
		case '\n':
			d = append(d, '\\', 'n')
		case '\t':
			d = append(d, '\\', 't')
		case '\r':
			d = append(d, '\\', 'r')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote reverses Quote. The input must start and end with an unescaped
// double quote; otherwise ErrUnterminated is returned. Unknown escape
// sequences are kept verbatim.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", ErrUnterminated
	}
	b := &strings.Builder{}
	b.Grow(len(v) - 2)
	i := 1
	for i < len(v) {
		c := v[i]
		i++
		switch c {
		case '"':
			if i != len(v) {
				// closed early; trailing garbage means the quoting is off
				return "", ErrUnterminated
			}
			return b.String(), nil
		case '\\':
			if i == len(v) {
				return "", ErrUnterminated
			}
			e := v[i]
			i++
			switch e {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", ErrUnterminated
}

// IsIdent reports whether key can appear unquoted as an object key:
// [A-Za-z_][A-Za-z0-9_.]*
func IsIdent(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case i > 0 && c >= '0' && c <= '9':
		case i > 0 && c == '.':
		default:
			return false
		}
	}
	return true
}

// QuoteKey returns key quoted only when it is not a plain identifier.
func QuoteKey(key string) string {
	if IsIdent(key) {
		return key
	}
	return Quote(key)
}
