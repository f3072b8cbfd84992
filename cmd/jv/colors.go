package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// writeColorJSON re-renders d, which must be valid JSON, with colored
// tokens: keys blue, strings green, numbers cyan, booleans and null
// magenta.
func writeColorJSON(w io.Writer, d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	p := &colorPrinter{w: w}
	return p.value(dec, 0)
}

type colorPrinter struct {
	w io.Writer
}

func (p *colorPrinter) value(dec *json.Decoder, depth int) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	return p.token(dec, tok, depth)
}

func (p *colorPrinter) token(dec *json.Decoder, tok json.Token, depth int) error {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object(dec, depth)
		case '[':
			return p.array(dec, depth)
		}
		return fmt.Errorf("unexpected delimiter %v", t)
	case string:
		fmt.Fprint(p.w, color.GreenString("%q", t))
	case json.Number:
		fmt.Fprint(p.w, color.CyanString("%s", t.String()))
	case bool:
		fmt.Fprint(p.w, color.MagentaString("%t", t))
	case nil:
		fmt.Fprint(p.w, color.MagentaString("null"))
	}
	return nil
}

func (p *colorPrinter) object(dec *json.Decoder, depth int) error {
	fmt.Fprint(p.w, "{")
	first := true
	for dec.More() {
		if !first {
			fmt.Fprint(p.w, ",")
		}
		first = false
		fmt.Fprintf(p.w, "\n%s", indent(depth+1))
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}
		fmt.Fprintf(p.w, "%s: ", color.BlueString("%q", key))
		if err := p.value(dec, depth+1); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if !first {
		fmt.Fprintf(p.w, "\n%s", indent(depth))
	}
	fmt.Fprint(p.w, "}")
	return nil
}

func (p *colorPrinter) array(dec *json.Decoder, depth int) error {
	fmt.Fprint(p.w, "[")
	first := true
	for dec.More() {
		if !first {
			fmt.Fprint(p.w, ",")
		}
		first = false
		fmt.Fprintf(p.w, "\n%s", indent(depth+1))
		if err := p.value(dec, depth+1); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if !first {
		fmt.Fprintf(p.w, "\n%s", indent(depth))
	}
	fmt.Fprint(p.w, "]")
	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
