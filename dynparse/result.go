package dynparse

import (
	"time"

	"github.com/varchiver/toon-format/go-toon/format"
	"github.com/varchiver/toon-format/go-toon/ir"
)

// ParseResult is the facade's unified answer: what format the content
// was, how sure detection was, the decoded tree if any, and everything
// learned along the way.
type ParseResult struct {
	Format     format.Format  `json:"format"`
	Confidence float64        `json:"confidence"`
	Data       *ir.Node       `json:"data,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Warnings   []string       `json:"warnings,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	Elapsed    time.Duration  `json:"elapsed"`
}

// IsSuccessful reports whether parsing produced data without errors.
// Warnings do not count against success.
func (r *ParseResult) IsSuccessful() bool {
	return r.Data != nil && len(r.Errors) == 0
}
