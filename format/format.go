package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TOONFormat Format = iota
	JSONFormat
	XMLFormat
	CSVFormat
	TSVFormat
	PipeFormat
	YAMLFormat
	INIFormat
	PropertiesFormat
	KeyValueFormat
	UnknownFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":          TOONFormat,
		"toon":       TOONFormat,
		"j":          JSONFormat,
		"json":       JSONFormat,
		"x":          XMLFormat,
		"xml":        XMLFormat,
		"c":          CSVFormat,
		"csv":        CSVFormat,
		"tsv":        TSVFormat,
		"pipe":       PipeFormat,
		"y":          YAMLFormat,
		"yaml":       YAMLFormat,
		"yml":        YAMLFormat,
		"ini":        INIFormat,
		"properties": PropertiesFormat,
		"kv":         KeyValueFormat,
		"keyvalue":   KeyValueFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TOONFormat:
		return []byte("toon"), nil
	case JSONFormat:
		return []byte("json"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case CSVFormat:
		return []byte("csv"), nil
	case TSVFormat:
		return []byte("tsv"), nil
	case PipeFormat:
		return []byte("pipe"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case INIFormat:
		return []byte("ini"), nil
	case PropertiesFormat:
		return []byte("properties"), nil
	case KeyValueFormat:
		return []byte("keyvalue"), nil
	case UnknownFormat:
		return []byte("unknown"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTOON() bool { return f == TOONFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsCSV() bool  { return f == CSVFormat }

// Delimited reports whether f is a row/column format and returns its
// column delimiter.
func (f Format) Delimited() (string, bool) {
	switch f {
	case CSVFormat:
		return ",", true
	case TSVFormat:
		return "\t", true
	case PipeFormat:
		return "|", true
	default:
		return "", false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TOONFormat:
		return ".toon"
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	case CSVFormat:
		return ".csv"
	case TSVFormat:
		return ".tsv"
	case PipeFormat:
		return ".psv"
	case YAMLFormat:
		return ".yaml"
	case INIFormat:
		return ".ini"
	case PropertiesFormat:
		return ".properties"
	default:
		return ""
	}
}

// AllFormats returns all detectable formats in priority order. The order is
// the tie-break between detectors reporting equal confidence: TOON outranks
// YAML so that their shared "key:" / "- " surface resolves toward TOON, and
// the delimited formats outrank YAML because their signals are stronger than
// YAML's two generic markers.
func AllFormats() []Format {
	return []Format{
		TOONFormat,
		JSONFormat,
		XMLFormat,
		CSVFormat,
		TSVFormat,
		PipeFormat,
		YAMLFormat,
		INIFormat,
		PropertiesFormat,
		KeyValueFormat,
	}
}
