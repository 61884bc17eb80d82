package decode

import "github.com/varchiver/toon-format/go-toon/ir"

// Metadata summarizes what the decoder saw in one document.
type Metadata struct {
	// LineCount is the raw number of input lines, blanks and comments
	// included.
	LineCount int

	// Structures lists the structure kinds encountered, each once, in
	// first-seen order: "key_value", "nested_object", "tabular_array",
	// "simple_array", "list_array".
	Structures []string

	// ArrayItems maps array key to decoded item count.
	ArrayItems map[string]int

	// Partial is set when the document failed to parse and only a flat
	// top-level salvage is returned.
	Partial bool
}

// Result carries the decoded tree plus everything learned along the way.
type Result struct {
	Node     *ir.Node
	Meta     Metadata
	Warnings []string
}
