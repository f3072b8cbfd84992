package govalue

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/json-toolkit/go-json/value"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want value.Value
	}{
		{"nil", nil, value.Null()},
		{"bool", true, value.FromBool(true)},
		{"int", 42, value.FromInt(42)},
		{"int64", int64(-7), value.FromInt(-7)},
		{"uint32", uint32(7), value.FromInt(7)},
		{"float64", 2.5, value.FromNumber(2.5)},
		{"string", "hi", value.FromString("hi")},
		{"bytes", []byte("hi"), value.FromString("hi")},
		{"json.Number int", json.Number("12"), value.FromInt(12)},
		{"json.Number float", json.Number("1.5"), value.FromNumber(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(got, tt.want) {
				t.Errorf("FromAny(%v) kind %s", tt.in, got.Kind())
			}
		})
	}
}

func TestFromAnyContainers(t *testing.T) {
	got, err := FromAny(map[string]any{
		"list": []any{1, "two", nil},
		"flag": false,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.ObjectKind {
		t.Fatalf("kind = %s", got.Kind())
	}
	list, err := got.Get("list")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := list.Len(); n != 3 {
		t.Errorf("list len = %d", n)
	}
	e, _ := list.At(2)
	if !e.IsNull() {
		t.Error("nil element did not map to null")
	}
}

func TestRoundTripAny(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": []any{"x", true, 2.5},
		"c": map[string]any{"nested": nil},
	}
	v, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out := ToAny(v)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

type address struct {
	Street string `json:"street"`
	City   string `json:"city,omitempty"`
}

type person struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Score   float64  `json:"score"`
	Tags    []string `json:"tags,omitempty"`
	Home    *address `json:"home,omitempty"`
	Ignored string   `json:"-"`
	hidden  string
}

func TestMarshalStruct(t *testing.T) {
	p := person{
		Name:    "ada",
		Age:     36,
		Score:   9.5,
		Tags:    []string{"x", "y"},
		Home:    &address{Street: "main"},
		Ignored: "nope",
		hidden:  "nope",
	}
	v, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	name, _ := v.Get("name")
	if name.MustString() != "ada" {
		t.Errorf("name = %q", name.MustString())
	}
	age, _ := v.Get("age")
	if age.MustInt() != 36 {
		t.Errorf("age = %d", age.MustInt())
	}
	if ig, _ := v.Get("ignored"); !ig.IsNull() {
		t.Error("json:\"-\" field was marshaled")
	}
	home, _ := v.Get("home")
	if city, _ := home.Get("city"); !city.IsNull() {
		t.Error("omitempty zero field was marshaled")
	}
}

func TestUnmarshalStruct(t *testing.T) {
	v, err := FromAny(map[string]any{
		"name":  "bob",
		"age":   7,
		"score": 1.5,
		"tags":  []any{"a"},
		"home":  map[string]any{"street": "side", "city": "town"},
	})
	if err != nil {
		t.Fatal(err)
	}
	var p person
	if err := Unmarshal(v, &p); err != nil {
		t.Fatal(err)
	}
	want := person{
		Name:  "bob",
		Age:   7,
		Score: 1.5,
		Tags:  []string{"a"},
		Home:  &address{Street: "side", City: "town"},
	}
	if diff := cmp.Diff(want, p, cmp.AllowUnexported(person{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	if err := Unmarshal(value.FromInt(1), nil); err == nil {
		t.Error("nil destination accepted")
	}
	var notPtr person
	if err := Unmarshal(value.FromInt(1), notPtr); err == nil {
		t.Error("non-pointer destination accepted")
	}

	var i int
	err := Unmarshal(value.FromString("x"), &i)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TypeError", err)
	}
	if te.Expected != "Int" || te.Actual != "String" {
		t.Errorf("TypeError = %v", te)
	}

	// Number does not silently truncate into int targets
	if err := Unmarshal(value.FromNumber(1.5), &i); err == nil {
		t.Error("float unmarshaled into int")
	}
}

func TestUnmarshalFieldPath(t *testing.T) {
	v, _ := FromAny(map[string]any{"home": map[string]any{"street": 5}})
	var p person
	err := Unmarshal(v, &p)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TypeError", err)
	}
	if te.FieldPath != "home.street" {
		t.Errorf("FieldPath = %q, want home.street", te.FieldPath)
	}
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal(make(chan int))
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
}
