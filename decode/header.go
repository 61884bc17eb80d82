package decode

import (
	"strconv"
	"strings"

	"github.com/varchiver/toon-format/go-toon/token"
)

// arrayHeader is a parsed array declaration line:
//
//	key[N]: v1,v2            inline values
//	key[N]{f1,f2}:           tabular header
//	key[#N\t]{f1\tf2}:       length marker and delimiter tag
//	key[N]:                  list or empty body follows
type arrayHeader struct {
	key    string
	n      int
	delim  string // from the explicit tag, "" when the rows decide
	fields []string
	inline string
}

// parseArrayHeader recognizes an array declaration. A false return means
// the line is not an array header at all and should be read as a plain
// key-value entry.
func parseArrayHeader(text string) (*arrayHeader, bool) {
	ob := findUnquoted(text, '[')
	if ob < 0 {
		return nil, false
	}
	rawKey := strings.TrimSpace(text[:ob])
	if rawKey != "" && rawKey[0] != '"' && !token.IsIdent(rawKey) {
		return nil, false
	}
	key, err := token.ParseKey(rawKey)
	if err != nil {
		return nil, false
	}
	cb := strings.IndexByte(text[ob:], ']')
	if cb < 0 {
		return nil, false
	}
	cb += ob
	spec := text[ob+1 : cb]
	// the optional length marker sits before the count
	spec = strings.TrimPrefix(spec, "#")
	j := 0
	for j < len(spec) && spec[j] >= '0' && spec[j] <= '9' {
		j++
	}
	// the declared length may be omitted entirely, as in "key[]:"
	n := -1
	if j > 0 {
		var err error
		n, err = strconv.Atoi(spec[:j])
		if err != nil {
			return nil, false
		}
	}
	h := &arrayHeader{key: key, n: n}
	if j < len(spec) {
		h.delim = spec[j:]
	}
	rest := text[cb+1:]
	if strings.HasPrefix(rest, "{") {
		ce := strings.IndexByte(rest, '}')
		if ce < 0 {
			return nil, false
		}
		fieldsRaw := rest[1:ce]
		// the field list is split on its own sniffed delimiter; the row
		// delimiter stays unresolved unless tagged explicitly
		fieldDelim := h.delim
		if fieldDelim == "" {
			fieldDelim = sniffDelimiter(fieldsRaw)
		}
		for _, f := range splitDelimited(fieldsRaw, fieldDelim) {
			k, err := token.ParseKey(f)
			if err != nil {
				return nil, false
			}
			h.fields = append(h.fields, k)
		}
		rest = rest[ce+1:]
	}
	if !strings.HasPrefix(rest, ":") {
		return nil, false
	}
	h.inline = strings.TrimSpace(rest[1:])
	return h, true
}
