package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/json-toolkit/go-json/govalue"
	"github.com/json-toolkit/go-json/value"
)

// MarshalYAML renders a value tree as YAML.
func MarshalYAML(v value.Value) ([]byte, error) {
	return yaml.Marshal(govalue.ToAny(v))
}

// UnmarshalYAML builds a value tree from YAML bytes.
func UnmarshalYAML(d []byte) (value.Value, error) {
	var raw any
	if err := yaml.Unmarshal(d, &raw); err != nil {
		return value.Null(), fmt.Errorf("decoding yaml: %w", err)
	}
	return govalue.FromAny(raw)
}
