// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to value trees. Both operate through a JSON byte round-trip, so patch
// semantics are exactly those of the underlying library.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/json-toolkit/go-json/codec"
	"github.com/json-toolkit/go-json/debug"
	"github.com/json-toolkit/go-json/value"
)

// Apply applies an RFC 6902 patch document (an array of operations) to doc
// and returns the patched value. doc is not modified.
func Apply(doc, patchDoc value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logf("json-patch %v applied to %v\n", patchDoc, doc)
	}
	patchJSON, err := codec.MarshalJSON(patchDoc)
	if err != nil {
		return value.Null(), err
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return value.Null(), fmt.Errorf("decoding patch: %w", err)
	}
	docJSON, err := codec.MarshalJSON(doc)
	if err != nil {
		return value.Null(), err
	}
	out, err := ops.Apply(docJSON)
	if err != nil {
		return value.Null(), fmt.Errorf("applying patch: %w", err)
	}
	return codec.UnmarshalJSON(out)
}

// Merge applies an RFC 7386 merge patch to doc and returns the merged
// value. doc is not modified.
func Merge(doc, mergeDoc value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logf("merge-patch %v applied to %v\n", mergeDoc, doc)
	}
	docJSON, err := codec.MarshalJSON(doc)
	if err != nil {
		return value.Null(), err
	}
	mergeJSON, err := codec.MarshalJSON(mergeDoc)
	if err != nil {
		return value.Null(), err
	}
	out, err := jsonpatch.MergePatch(docJSON, mergeJSON)
	if err != nil {
		return value.Null(), fmt.Errorf("applying merge patch: %w", err)
	}
	return codec.UnmarshalJSON(out)
}
