// Package govalue converts between Go data and value trees.
//
// FromAny and ToAny bridge plain Go data (nil, bool, numbers, strings,
// []any, map[string]any), which is also the interchange form used by the
// codec and query packages. Marshal and Unmarshal use reflection for
// arbitrary Go types, honoring `json` struct tags.
package govalue
