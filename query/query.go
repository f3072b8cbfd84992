// Package query evaluates expressions against a value tree. Expressions
// use the expr language; the document is exposed as "doc" in plain Go form
// (maps, slices, scalars) and results are mapped back into values.
package query

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/json-toolkit/go-json/debug"
	"github.com/json-toolkit/go-json/govalue"
	"github.com/json-toolkit/go-json/value"
)

// Eval compiles and runs src against doc. Helper functions available to
// expressions: getpath(path), kindof(path), getenv(name).
func Eval(src string, doc value.Value) (value.Value, error) {
	if debug.Query() {
		debug.Logf("query %q on %v\n", src, doc)
	}
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return value.Null(), fmt.Errorf("compiling query: %w", err)
	}
	env := map[string]any{"doc": govalue.ToAny(doc)}
	res, err := expr.Run(prg, env)
	if err != nil {
		return value.Null(), fmt.Errorf("running query: %w", err)
	}
	return govalue.FromAny(res)
}

func exprOpts(doc value.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := value.GetPath(doc, path)
			if err != nil {
				return nil, err
			}
			return govalue.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("kindof", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := value.GetPath(doc, path)
			if err != nil {
				return nil, err
			}
			return res.Kind().String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
