package codec

import (
	"fmt"
	"io"

	"github.com/json-toolkit/go-json/value"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return "<unknown format>"
}

func ParseFormat(v string) (Format, error) {
	switch v {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "yml", "y":
		return YAMLFormat, nil
	}
	return JSONFormat, fmt.Errorf("unrecognized format %q", v)
}

// Decode builds a value tree from d in the given format.
func Decode(d []byte, f Format) (value.Value, error) {
	switch f {
	case YAMLFormat:
		return UnmarshalYAML(d)
	default:
		return UnmarshalJSON(d)
	}
}

// Encode writes v to w in the given format. JSON output is indented and
// newline-terminated.
func Encode(w io.Writer, v value.Value, f Format) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case YAMLFormat:
		d, err = MarshalYAML(v)
	default:
		d, err = MarshalJSONIndent(v, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
