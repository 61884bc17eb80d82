package detect

import "github.com/varchiver/toon-format/go-toon/format"

// Result is one detector's verdict: the format it guesses, how sure it
// is, and the evidence behind the score.
type Result struct {
	Format     format.Format  `json:"format"`
	Confidence float64        `json:"confidence"`
	Indicators []string       `json:"indicators,omitempty"`
	Structure  map[string]any `json:"structure,omitempty"`
}
