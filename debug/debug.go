package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Detect bool
	Decode bool
	Codec  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Detect = boolEnv("TOON_DEBUG_DETECT")
	d.Decode = boolEnv("TOON_DEBUG_DECODE")
	d.Codec = boolEnv("TOON_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Detect() bool {
	return d.Detect
}
func Decode() bool {
	return d.Decode
}
func Codec() bool {
	return d.Codec
}
