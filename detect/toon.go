package detect

import (
	"regexp"
	"strings"
)

var toonPatterns = []struct {
	re   *regexp.Regexp
	desc string
}{
	{regexp.MustCompile(`^\w+\[#?\d+[^\]]*\]\{.*\}:`), "tabular array declaration"},
	{regexp.MustCompile(`^\w+\[#?\d+\]:`), "array with length"},
	{regexp.MustCompile(`^\s*\w+:`), "key-value structure"},
	{regexp.MustCompile(`^\s*-\s+`), "list item marker"},
	{regexp.MustCompile(`^\s+[\w,\-\.\s]+$`), "indented data row"},
}

var (
	toonLengthRe = regexp.MustCompile(`\[#?\d+`)
	toonFieldsRe = regexp.MustCompile(`\{[^}]+\}:`)
	toonTableRe  = regexp.MustCompile(`\{([^}]+)\}`)
)

func detectTOON(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".toon") {
		indicators = append(indicators, "file extension: .toon")
		conf += 0.3
	}

	structure := map[string]any{}
	matches := 0
	for _, line := range sampleLines(content, 20) {
		for _, p := range toonPatterns {
			if !p.re.MatchString(line) {
				continue
			}
			indicators = append(indicators, "pattern match: "+p.desc)
			matches++
			if m := toonTableRe.FindStringSubmatch(line); m != nil {
				fields := strings.Split(m[1], ",")
				for i := range fields {
					fields[i] = strings.TrimSpace(fields[i])
				}
				structure["table_fields"] = fields
			}
			break
		}
	}

	lines := strings.Split(content, "\n")
	indented := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "  ") {
			indented++
		}
	}
	if float64(indented) > float64(len(lines))*0.3 {
		indicators = append(indicators, "significant indentation")
		conf += 0.2
	}

	if toonLengthRe.MatchString(content) {
		indicators = append(indicators, "array length markers")
		conf += 0.25
	}
	if toonFieldsRe.MatchString(content) {
		indicators = append(indicators, "field declarations")
		conf += 0.25
	}

	conf += min(float64(matches)*0.1, 0.5)

	if len(structure) == 0 {
		structure = nil
	}
	return conf, indicators, structure
}
