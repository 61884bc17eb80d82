package detect

import (
	"regexp"
	"strings"
)

var (
	iniSectionRe = regexp.MustCompile(`(?m)^\[.*\]`)
	iniAssignRe  = regexp.MustCompile(`(?m)^\w+\s*=`)
	propLineRe   = regexp.MustCompile(`^\w+[\.\w]*\s*[=:]`)
)

func detectKeyValue(content, filename string) (float64, []string, map[string]any) {
	lines := strings.Split(content, "\n")
	kv := 0
	for _, line := range lines {
		if strings.Contains(line, "=") && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			kv++
		}
	}
	if float64(kv) > float64(len(lines))*0.5 {
		return 0.3, []string{"key-value pairs"}, map[string]any{"format": "key_value"}
	}
	return 0, nil, nil
}

func detectINI(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".ini") {
		indicators = append(indicators, "file extension: .ini")
		conf += 0.4
	}
	if iniSectionRe.MatchString(content) {
		indicators = append(indicators, "INI sections")
		conf += 0.3
	}
	if iniAssignRe.MatchString(content) {
		indicators = append(indicators, "key-value assignments")
		conf += 0.2
	}
	if conf == 0 {
		return 0, indicators, nil
	}
	return conf, indicators, map[string]any{"format": "ini"}
}

func detectProperties(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".properties") {
		indicators = append(indicators, "file extension: .properties")
		conf += 0.4
	}
	lines := strings.Split(content, "\n")
	props := 0
	for _, line := range lines {
		if propLineRe.MatchString(line) {
			props++
		}
	}
	if float64(props) > float64(len(lines))*0.5 {
		indicators = append(indicators, "properties format")
		conf += 0.3
	}
	if conf == 0 {
		return 0, indicators, nil
	}
	return conf, indicators, map[string]any{"format": "properties"}
}
