package decode

import "strings"

// findUnquoted returns the index of the first c outside a double-quoted
// region, or -1. Backslash escapes inside quotes are honored.
func findUnquoted(s string, c byte) int {
	inQ := false
	for i := 0; i < len(s); i++ {
		switch {
		case inQ && s[i] == '\\':
			i++
		case s[i] == '"':
			inQ = !inQ
		case !inQ && s[i] == c:
			return i
		}
	}
	return -1
}

// splitDelimited splits s on delim, leaving delimiters inside quoted
// regions alone, and trims whitespace around each cell.
func splitDelimited(s, delim string) []string {
	var out []string
	var b strings.Builder
	inQ := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQ {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
				continue
			}
			if c == '"' {
				inQ = false
			}
			continue
		}
		if c == '"' {
			inQ = true
			b.WriteByte(c)
			continue
		}
		if strings.HasPrefix(s[i:], delim) {
			out = append(out, strings.TrimSpace(b.String()))
			b.Reset()
			i += len(delim) - 1
			continue
		}
		b.WriteByte(c)
	}
	out = append(out, strings.TrimSpace(b.String()))
	return out
}

// sniffDelimiter picks the active delimiter from a sample line: tab wins
// over pipe, pipe over comma.
func sniffDelimiter(s string) string {
	if strings.Contains(s, "\t") {
		return "\t"
	}
	if strings.Contains(s, "|") {
		return "|"
	}
	return ","
}
