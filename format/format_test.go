package format

import (
	"errors"
	"testing"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f.String(), got)
		}
	}
}

func TestParseFormatAliases(t *testing.T) {
	for in, want := range map[string]Format{
		"t":   TOONFormat,
		"j":   JSONFormat,
		"yml": YAMLFormat,
		"kv":  KeyValueFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("nope"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("csv")); err != nil || f != CSVFormat {
		t.Errorf("got %v, %v", f, err)
	}
	if err := f.UnmarshalText([]byte("unknown")); err == nil {
		t.Errorf("unknown should not round trip through text")
	}
}

func TestDelimited(t *testing.T) {
	for f, want := range map[Format]string{
		CSVFormat:  ",",
		TSVFormat:  "\t",
		PipeFormat: "|",
	} {
		d, ok := f.Delimited()
		if !ok || d != want {
			t.Errorf("%s: got %q, %v", f, d, ok)
		}
	}
	if _, ok := TOONFormat.Delimited(); ok {
		t.Errorf("toon is not delimited")
	}
}

func TestAllFormatsExcludesUnknown(t *testing.T) {
	for _, f := range AllFormats() {
		if f == UnknownFormat {
			t.Fatalf("unknown listed as detectable")
		}
	}
	if len(AllFormats()) != 10 {
		t.Errorf("got %d formats", len(AllFormats()))
	}
}
