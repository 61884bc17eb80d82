package detect

import (
	"strings"

	segjson "github.com/segmentio/encoding/json"
)

func detectJSON(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".json") {
		indicators = append(indicators, "file extension: .json")
		conf += 0.4
	}

	bracketed := (strings.HasPrefix(content, "{") && strings.HasSuffix(content, "}")) ||
		(strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]"))
	if bracketed {
		indicators = append(indicators, "JSON brackets structure")
		conf += 0.3
	}

	var data any
	if err := segjson.Unmarshal([]byte(content), &data); err == nil && data != nil {
		indicators = append(indicators, "valid JSON parse")
		conf += 0.5
		structure := map[string]any{}
		switch v := data.(type) {
		case map[string]any:
			structure["type"] = "object"
			keys := make([]string, 0, 10)
			for k := range v {
				if len(keys) == 10 {
					break
				}
				keys = append(keys, k)
			}
			structure["keys"] = keys
		case []any:
			structure["type"] = "array"
			structure["items"] = len(v)
		default:
			structure["type"] = "scalar"
		}
		return conf, indicators, structure
	}
	// structural markers without a parse are usually a false positive
	conf *= 0.3
	return conf, indicators, nil
}
