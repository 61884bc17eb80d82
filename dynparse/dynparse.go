package dynparse

import (
	"errors"
	"fmt"
	"time"

	"github.com/varchiver/toon-format/go-toon/codec"
	"github.com/varchiver/toon-format/go-toon/decode"
	"github.com/varchiver/toon-format/go-toon/detect"
	"github.com/varchiver/toon-format/go-toon/format"
)

// ErrNoParserForFormat is reported (as a result error) when detection
// lands on a format with no registered codec.
var ErrNoParserForFormat = errors.New("no parser available for format")

// Parse detects the format of content and decodes it. Failures never
// surface as a Go error; they land in the result's Errors so one call
// shape covers clean input, degraded input and garbage alike.
func Parse(content []byte, opts ...ParseOption) *ParseResult {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()

	var det *detect.Result
	if o.hasHint {
		det = &detect.Result{
			Format:     o.hint,
			Confidence: 1.0,
			Indicators: []string{"format hint provided"},
		}
	} else {
		det = detect.Detect(content, o.filename)
	}

	res := &ParseResult{
		Format:     det.Format,
		Confidence: det.Confidence,
		Metadata: map[string]any{
			"detection": map[string]any{
				"format":          det.Format.String(),
				"confidence":      det.Confidence,
				"indicators":      det.Indicators,
				"structure_hints": det.Structure,
			},
		},
	}

	switch {
	case det.Format == format.TOONFormat:
		parseTOON(res, content, o)
	default:
		c, ok := codec.For(det.Format)
		if !ok {
			res.Errors = append(res.Errors,
				fmt.Sprintf("%v: %s", ErrNoParserForFormat, det.Format))
			break
		}
		node, err := c.Decode(content)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("fallback parser error: %v", err))
			break
		}
		res.Data = node
		res.Metadata["parser_type"] = "fallback"
	}

	res.Elapsed = time.Since(start)
	return res
}

// parseTOON routes through the dedicated decoder so warnings and
// structural metadata survive into the result.
func parseTOON(res *ParseResult, content []byte, o *parseOpts) {
	dres, err := decode.Decode(content,
		decode.Strict(o.strict),
		decode.Recovery(o.recovery),
		decode.Indent(o.indent),
	)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return
	}
	res.Data = dres.Node
	res.Warnings = append(res.Warnings, dres.Warnings...)
	res.Metadata["line_count"] = dres.Meta.LineCount
	res.Metadata["structure_types"] = dres.Meta.Structures
	res.Metadata["array_stats"] = dres.Meta.ArrayItems
	if dres.Meta.Partial {
		res.Metadata["partial"] = true
		res.Warnings = append(res.Warnings, "partial parsing due to errors")
	}
}

// Detect is a convenience passthrough for detection without parsing.
func Detect(content []byte, filename string) *detect.Result {
	return detect.Detect(content, filename)
}

// DetectAll returns every positive detection verdict, best first.
func DetectAll(content []byte, filename string) []detect.Result {
	return detect.All(content, filename)
}
