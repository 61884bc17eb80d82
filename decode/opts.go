package decode

type decOpts struct {
	strict   bool
	recovery bool
	indent   int
}

func defaultOpts() *decOpts {
	return &decOpts{
		recovery: true,
		indent:   2,
	}
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decOpts)

// Strict makes the first structural violation fatal: declared array
// lengths and tabular field counts must match exactly. Strict overrides
// Recovery.
func Strict(v bool) DecodeOption {
	return func(o *decOpts) {
		o.strict = v
	}
}

// Recovery downgrades structural violations to warnings and, when the
// document cannot be parsed at all, salvages top-level key-value pairs
// instead of failing. On by default.
func Recovery(v bool) DecodeOption {
	return func(o *decOpts) {
		o.recovery = v
	}
}

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) DecodeOption {
	return func(o *decOpts) {
		if n > 0 {
			o.indent = n
		}
	}
}
