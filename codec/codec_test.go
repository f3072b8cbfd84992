package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/json-toolkit/go-json/value"
)

func TestUnmarshalJSON(t *testing.T) {
	v, err := UnmarshalJSON([]byte(`{"n": 3, "f": 1.5, "s": "x", "b": true, "z": null, "a": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key  string
		kind value.Kind
	}{
		{"n", value.IntKind},
		{"f", value.NumberKind},
		{"s", value.StringKind},
		{"b", value.BoolKind},
		{"z", value.NullKind},
		{"a", value.ArrayKind},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, err := v.Get(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if e.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind(), tt.kind)
			}
		})
	}
	n, _ := v.Get("n")
	if n.MustInt() != 3 {
		t.Errorf("n = %d", n.MustInt())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	src := `{"a":[1,"two",null,{"deep":true}],"n":2.5}`
	v, err := UnmarshalJSON([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	d, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(v, back) {
		t.Errorf("round trip changed the value: %s", d)
	}
}

func TestUnmarshalJSONError(t *testing.T) {
	if _, err := UnmarshalJSON([]byte(`{"unterminated`)); err == nil {
		t.Error("bad JSON accepted")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	src := "name: test\nitems:\n  - 1\n  - two\nok: true\n"
	v, err := UnmarshalYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	name, _ := v.Get("name")
	if name.MustString() != "test" {
		t.Errorf("name = %q", name.MustString())
	}
	d, err := MarshalYAML(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(v, back) {
		t.Error("yaml round trip changed the value")
	}
}

func TestFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"json", JSONFormat},
		{"j", JSONFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"y", YAMLFormat},
	} {
		f, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if f != tt.want {
			t.Errorf("ParseFormat(%q) = %s", tt.in, f)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestEncodeDecode(t *testing.T) {
	v, err := Decode([]byte(`{"k": 1}`), JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, v, JSONFormat); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("json output not newline-terminated")
	}
	buf.Reset()
	if err := Encode(&buf, v, YAMLFormat); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "k: 1") {
		t.Errorf("yaml output = %q", buf.String())
	}
}
