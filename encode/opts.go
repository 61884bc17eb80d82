package encode

// EncodeOption configures a single Encode call.
type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// Delimiter sets the separator used for inline values and tabular rows
// (default ","). A non-comma delimiter is tagged in tabular headers so
// the decoder can recover it.
func Delimiter(d string) EncodeOption {
	return func(es *EncState) {
		es.delimiter = d
	}
}

// LengthMarker prefixes every array length with '#', as in "[#3]".
func LengthMarker(v bool) EncodeOption {
	return func(es *EncState) {
		es.lengthMarker = v
	}
}
