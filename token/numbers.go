package token

import (
	"strconv"
	"strings"
)

// LooksNumeric reports whether v would read back as a number if left
// unquoted.
func LooksNumeric(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// hasFloatMarker reports whether v carries a fractional part or exponent,
// which is what selects float parsing over integer parsing.
func hasFloatMarker(v string) bool {
	return strings.ContainsAny(v, ".eE")
}
