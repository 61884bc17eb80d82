package detect

import (
	"encoding/xml"
	"regexp"
	"strings"
)

var xmlTagRe = regexp.MustCompile(`<\w+.*?>`)

func detectXML(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".xml") {
		indicators = append(indicators, "file extension: .xml")
		conf += 0.4
	}
	if strings.HasPrefix(content, "<?xml") {
		indicators = append(indicators, "XML declaration")
		conf += 0.3
	}
	if xmlTagRe.MatchString(content) {
		indicators = append(indicators, "XML tags")
		conf += 0.2
	}

	if root, children, attrs, ok := trialXML(content); ok {
		indicators = append(indicators, "valid XML parse")
		conf += 0.4
		return conf, indicators, map[string]any{
			"root_tag":   root,
			"children":   children,
			"attributes": attrs,
		}
	}
	return conf, indicators, nil
}

// trialXML checks well-formedness with a full token walk and reports the
// root element's name, direct child count and attribute count.
func trialXML(content string) (root string, children, attrs int, ok bool) {
	dec := xml.NewDecoder(strings.NewReader(content))
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			if root != "" && depth == 0 {
				return root, children, attrs, true
			}
			return "", 0, 0, false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch depth {
			case 0:
				if root != "" {
					// a second top-level element is not a document
					return "", 0, 0, false
				}
				root = t.Name.Local
				attrs = len(t.Attr)
			case 1:
				children++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}
