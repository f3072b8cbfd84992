package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/json-toolkit/go-json/codec"
	"github.com/json-toolkit/go-json/value"
)

// Logf writes a debug line to stderr, rendering value trees and plain JSON
// data arguments as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case value.Value:
			d, err := codec.MarshalJSONIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw value] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
