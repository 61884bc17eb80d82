package detect

import (
	"strings"

	"github.com/varchiver/toon-format/go-toon/debug"
	"github.com/varchiver/toon-format/go-toon/format"
)

// A heuristic scores the likelihood that content is its format. The
// filename is a weak signal only; no heuristic opens files.
type heuristic func(content, filename string) (float64, []string, map[string]any)

func heuristicFor(f format.Format) heuristic {
	switch f {
	case format.TOONFormat:
		return detectTOON
	case format.JSONFormat:
		return detectJSON
	case format.XMLFormat:
		return detectXML
	case format.CSVFormat:
		return detectCSV
	case format.TSVFormat:
		return detectTSV
	case format.PipeFormat:
		return detectPipe
	case format.YAMLFormat:
		return detectYAML
	case format.INIFormat:
		return detectINI
	case format.PropertiesFormat:
		return detectProperties
	case format.KeyValueFormat:
		return detectKeyValue
	default:
		return nil
	}
}

// Detect runs every heuristic and returns the best verdict. Ties resolve
// by the fixed priority order of format.AllFormats, never by iteration
// accident. Empty input is UnknownFormat with zero confidence.
func Detect(content []byte, filename string) *Result {
	all := All(content, filename)
	if len(all) == 0 {
		return &Result{
			Format:     format.UnknownFormat,
			Indicators: []string{"no format detected"},
		}
	}
	return &all[0]
}

// All returns every positive verdict, best first. The sort is by
// confidence descending with format.AllFormats order breaking ties.
func All(content []byte, filename string) []Result {
	text := strings.TrimSpace(string(content))
	if text == "" {
		return nil
	}
	var results []Result
	for _, f := range format.AllFormats() {
		h := heuristicFor(f)
		if h == nil {
			continue
		}
		conf, indicators, structure := h(text, filename)
		if conf <= 0 {
			continue
		}
		if conf > 1 {
			conf = 1
		}
		if debug.Detect() {
			debug.Logf("detect: %s %.2f %v", f, conf, indicators)
		}
		results = append(results, Result{
			Format:     f,
			Confidence: conf,
			Indicators: indicators,
			Structure:  structure,
		})
	}
	// stable insertion sort: AllFormats order is already the tie-break,
	// so only strictly greater confidence moves a result up
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Confidence > results[j-1].Confidence; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
	return results
}

func hasSuffix(filename string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(filename, s) {
			return true
		}
	}
	return false
}

// sampleLines returns up to n content lines for bounded-cost scanning.
func sampleLines(text string, n int) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
