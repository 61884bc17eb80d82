package detect

import (
	"encoding/csv"
	"strings"
)

// delimCounts returns the per-line occurrence counts of delim over the
// first ten content lines, plus whether those counts are consistent
// (at most two distinct values, the slack allowing one header quirk).
func delimCounts(content, delim string) ([]int, bool) {
	var counts []int
	for _, line := range sampleLines(content, 10) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		counts = append(counts, strings.Count(line, delim))
	}
	if len(counts) == 0 {
		return nil, false
	}
	distinct := map[int]bool{}
	for _, c := range counts {
		distinct[c] = true
	}
	return counts, len(distinct) <= 2
}

func maxCount(counts []int) int {
	m := 0
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}

func detectCSV(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".csv") {
		indicators = append(indicators, "file extension: .csv")
		conf += 0.4
	}

	counts, consistent := delimCounts(content, ",")
	if counts == nil {
		return 0, indicators, nil
	}
	if consistent {
		indicators = append(indicators, "consistent comma separation")
		conf += 0.3
	}

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	var rows [][]string
	for len(rows) < 5 {
		rec, err := r.Read()
		if err != nil {
			break
		}
		rows = append(rows, rec)
	}
	if len(rows) >= 2 && len(rows[0]) > 1 {
		indicators = append(indicators, "valid CSV structure")
		conf += 0.4
		return conf, indicators, map[string]any{
			"delimiter": ",",
			"headers":   rows[0],
			"columns":   len(rows[0]),
			"rows":      len(rows) - 1,
		}
	}
	return conf, indicators, nil
}

func detectTSV(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	if hasSuffix(filename, ".tsv") {
		indicators = append(indicators, "file extension: .tsv")
		conf += 0.4
	}

	counts, consistent := delimCounts(content, "\t")
	if consistent && maxCount(counts) > 0 {
		indicators = append(indicators, "consistent tab separation")
		conf += 0.4
		return conf, indicators, map[string]any{
			"delimiter": "\t",
			"columns":   maxCount(counts) + 1,
		}
	}
	return conf, indicators, nil
}

func detectPipe(content, filename string) (float64, []string, map[string]any) {
	var indicators []string
	conf := 0.0

	counts, consistent := delimCounts(content, "|")
	if consistent && maxCount(counts) > 1 {
		indicators = append(indicators, "consistent pipe separation")
		conf += 0.3
		return conf, indicators, map[string]any{
			"delimiter": "|",
			"columns":   maxCount(counts) + 1,
		}
	}
	return conf, indicators, nil
}
