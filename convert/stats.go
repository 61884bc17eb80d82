package convert

import (
	"math"
	"strings"

	"github.com/varchiver/toon-format/go-toon/encode"
)

// TokenStats estimates how much a JSON document shrinks in TOON form.
// The token counts are rough whitespace-and-punctuation approximations,
// not a tokenizer; they exist to rank documents, not to bill them.
type TokenStats struct {
	JSONTokens     int     `json:"json_tokens"`
	TOONTokens     int     `json:"toon_tokens"`
	SavingsPercent float64 `json:"savings_percent"`
	JSONLength     int     `json:"json_length"`
	TOONLength     int     `json:"toon_length"`
	SizeReduction  float64 `json:"size_reduction"`
}

// EstimateTokenSavings converts jsonData to TOON and compares the two
// renditions.
func EstimateTokenSavings(jsonData []byte, opts ...encode.EncodeOption) (*TokenStats, error) {
	toon, err := JSONToTOON(jsonData, opts...)
	if err != nil {
		return nil, err
	}
	jsonContent := string(jsonData)

	jsonTokens := len(strings.Fields(jsonContent)) +
		strings.Count(jsonContent, ",") +
		strings.Count(jsonContent, "{") +
		strings.Count(jsonContent, "}")
	toonTokens := len(strings.Fields(toon)) +
		strings.Count(toon, ",") +
		strings.Count(toon, ":")

	savings := 0.0
	if jsonTokens > 0 {
		savings = float64(jsonTokens-toonTokens) / float64(jsonTokens)
	}
	reduction := 0.0
	if len(jsonContent) > 0 {
		reduction = float64(len(jsonContent)-len(toon)) / float64(len(jsonContent))
	}
	return &TokenStats{
		JSONTokens:     jsonTokens,
		TOONTokens:     toonTokens,
		SavingsPercent: round1(savings * 100),
		JSONLength:     len(jsonContent),
		TOONLength:     len(toon),
		SizeReduction:  round1(reduction * 100),
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
