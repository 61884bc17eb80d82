package dynparse

import "github.com/varchiver/toon-format/go-toon/format"

type parseOpts struct {
	filename string
	hint     format.Format
	hasHint  bool
	strict   bool
	recovery bool
	indent   int
}

func defaultOpts() *parseOpts {
	return &parseOpts{
		recovery: true,
		indent:   2,
	}
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseOpts)

// Filename supplies a name used as a weak detection signal. The facade
// never opens files itself.
func Filename(name string) ParseOption {
	return func(o *parseOpts) {
		o.filename = name
	}
}

// FormatHint skips detection entirely and parses as f with confidence
// forced to 1.
func FormatHint(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.hint = f
		o.hasHint = true
	}
}

// Strict makes TOON structural violations fatal instead of warnings.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) {
		o.strict = v
	}
}

// Recovery enables TOON degraded parsing on malformed input. On by
// default.
func Recovery(v bool) ParseOption {
	return func(o *parseOpts) {
		o.recovery = v
	}
}

// Indent sets the TOON indentation width (default 2).
func Indent(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.indent = n
		}
	}
}
