package detect

import (
	"regexp"

	"github.com/goccy/go-yaml"
)

var (
	yamlKeyRe  = regexp.MustCompile(`(?m)^\w+:`)
	yamlItemRe = regexp.MustCompile(`(?m)^\s*-\s+`)
)

func detectYAML(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".yaml", ".yml") {
		indicators = append(indicators, "file extension: .yaml/.yml")
		conf += 0.4
	}

	if yamlKeyRe.MatchString(content) {
		indicators = append(indicators, "key-value structure")
		conf += 0.2
	}
	if yamlItemRe.MatchString(content) {
		indicators = append(indicators, "list items")
		conf += 0.2
	}

	var data any
	if err := yaml.Unmarshal([]byte(content), &data); err == nil && data != nil {
		indicators = append(indicators, "valid YAML parse")
		conf += 0.4
		structure := map[string]any{}
		if m, ok := data.(map[string]any); ok {
			structure["type"] = "mapping"
			keys := make([]string, 0, 10)
			for k := range m {
				if len(keys) == 10 {
					break
				}
				keys = append(keys, k)
			}
			structure["keys"] = keys
		} else {
			structure["type"] = "other"
		}
		return conf, indicators, structure
	}
	return conf, indicators, nil
}
