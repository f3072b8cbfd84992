package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JV_DEBUG_DIFF")
	d.Patch = boolEnv("JV_DEBUG_PATCH")
	d.Query = boolEnv("JV_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
