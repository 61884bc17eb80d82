package decode

import (
	"fmt"
	"strings"

	"github.com/varchiver/toon-format/go-toon/ir"
	"github.com/varchiver/toon-format/go-toon/token"
)

// flatScan is the last-resort recovery pass: it walks every line
// regardless of indentation, collecting plain key-value pairs into one
// flat object and warning about everything else. A false return means
// nothing at all was salvageable.
func (s *session) flatScan() (*ir.Node, bool) {
	obj := ir.Object()
	for i, line := range s.lines {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		if _, ok := parseArrayHeader(t); ok {
			s.warnf(i, "skipped array declaration")
			continue
		}
		ci := findUnquoted(t, ':')
		if ci <= 0 {
			s.warnf(i, "unparseable line")
			continue
		}
		key, err := token.ParseKey(t[:ci])
		if err != nil || key == "" {
			s.warnf(i, "unparseable key")
			continue
		}
		v, err := token.ParsePrimitive(strings.TrimSpace(t[ci+1:]))
		if err != nil {
			s.warnf(i, "unparseable value")
			continue
		}
		obj.Set(key, v)
	}
	if len(obj.Fields) == 0 {
		return nil, false
	}
	return obj, true
}

func (s *session) warnf(i int, format string, args ...any) {
	s.warnings = append(s.warnings,
		fmt.Sprintf("line %d: %s", i+1, fmt.Sprintf(format, args...)))
}
