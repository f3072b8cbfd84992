package value

import (
	"errors"
	"testing"
)

func pathDoc() Value {
	return objectOf(map[string]Value{
		"name": FromString("top"),
		"servers": arrayOf(
			objectOf(map[string]Value{"host": FromString("a"), "port": FromInt(80)}),
			objectOf(map[string]Value{"host": FromString("b"), "port": FromInt(81)}),
		),
		"service": objectOf(map[string]Value{"host": FromString("c")}),
	})
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want Value
	}{
		{"name", FromString("top")},
		{"servers[0].host", FromString("a")},
		{"servers[1].port", FromInt(81)},
		{"service.host", FromString("c")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := GetPath(doc, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("GetPath(%q) = %v kind %s", tt.path, got, got.Kind())
			}
		})
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := pathDoc()
	for _, path := range []string{
		"missing",
		"servers[5]",
		"servers[0].host.deeper",
		"name[0]",
		"servers[x]",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := GetPath(doc, path)
			if !errors.Is(err, ErrPath) {
				t.Errorf("GetPath(%q): err = %v, want ErrPath", path, err)
			}
		})
	}
}

func TestListPath(t *testing.T) {
	doc := pathDoc()

	hosts, err := ListPath(doc, "servers[*].host")
	if err != nil {
		t.Fatal(err)
	}
	if len(hosts) != 2 || hosts[0].MustString() != "a" || hosts[1].MustString() != "b" {
		t.Errorf("servers[*].host = %v", hosts)
	}

	// glob key segments, matches in key order
	got, err := ListPath(doc, "serv*.host")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].MustString() != "c" {
		t.Errorf("serv*.host matched %d values", len(got))
	}

	all, err := ListPath(doc, "*")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("* matched %d values, want 3", len(all))
	}

	none, err := ListPath(doc, "nope.*")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("dead-end path matched %d values", len(none))
	}
}
