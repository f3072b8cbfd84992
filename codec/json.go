package codec

import (
	"bytes"
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/json-toolkit/go-json/govalue"
	"github.com/json-toolkit/go-json/value"
)

// MarshalJSON renders a value tree as JSON.
func MarshalJSON(v value.Value) ([]byte, error) {
	return json.Marshal(govalue.ToAny(v))
}

// MarshalJSONIndent renders a value tree as indented JSON.
func MarshalJSONIndent(v value.Value, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(govalue.ToAny(v), prefix, indent)
}

// UnmarshalJSON builds a value tree from JSON bytes. Numbers without a
// fraction or exponent surface as IntKind, others as NumberKind.
func UnmarshalJSON(d []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Null(), fmt.Errorf("decoding json: %w", err)
	}
	return govalue.FromAny(raw)
}
