package convert

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/varchiver/toon-format/go-toon/ir"
)

// RoundTripDiff converts jsonData to TOON, decodes it back, and reports
// what changed. An empty diff means the round trip was lossless. The
// comparison is value-level first (ir.Equal), so formatting-only JSON
// differences do not count as loss.
func RoundTripDiff(jsonData []byte) (string, error) {
	before, err := jsonCodec().Decode(jsonData)
	if err != nil {
		return "", err
	}
	toon, err := JSONToTOON(jsonData)
	if err != nil {
		return "", err
	}
	after, err := decodeTOON([]byte(toon))
	if err != nil {
		return "", err
	}
	if ir.Equal(before, after) {
		return "", nil
	}
	a, err := jsonCodec().Encode(before)
	if err != nil {
		return "", err
	}
	b, err := jsonCodec().Encode(after)
	if err != nil {
		return "", err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(a), string(b), false)
	return dmp.DiffPrettyText(diffs), nil
}
