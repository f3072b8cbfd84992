package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/tidwall/match"

	"github.com/json-toolkit/go-json/codec"
	"github.com/json-toolkit/go-json/diff"
	"github.com/json-toolkit/go-json/patch"
	"github.com/json-toolkit/go-json/query"
	"github.com/json-toolkit/go-json/value"
)

func readValue(cfg *MainConfig, file string) (value.Value, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return value.Null(), fmt.Errorf("could not read %q: %w", file, err)
	}
	v, err := codec.Decode(d, cfg.inFormat())
	if err != nil {
		return value.Null(), fmt.Errorf("error decoding %q: %w", file, err)
	}
	return v, nil
}

func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// jvMain with no subcommand converts between input and output formats.
func jvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	w := cfg.writer(cc)
	for _, file := range inputFiles(args) {
		v, err := readValue(cfg, file)
		if err != nil {
			return err
		}
		if err := cfg.emit(w, v); err != nil {
			return err
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: get needs a path", cli.ErrUsage)
	}
	path := args[0]
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	w := cfg.writer(cc)
	for _, file := range inputFiles(args[1:]) {
		doc, err := readValue(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if match.IsPattern(path) {
			res, err := value.ListPath(doc, path)
			if err != nil {
				return err
			}
			for _, v := range res {
				if err := cfg.emit(w, v); err != nil {
					return err
				}
			}
			continue
		}
		v, err := value.GetPath(doc, path)
		if err != nil {
			return err
		}
		if err := cfg.emit(w, v); err != nil {
			return err
		}
	}
	return nil
}

func cmpRun(cfg *CmpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmp.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: cmp needs two files", cli.ErrUsage)
	}
	a, err := readValue(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readValue(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	fmt.Fprintf(cfg.writer(cc), "%d\n", value.Compare(a, b))
	return nil
}

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs two files", cli.ErrUsage)
	}
	from, err := readValue(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readValue(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	d, ok := diff.Diff(from, to)
	if !ok {
		return nil
	}
	return cfg.emit(cfg.writer(cc), d)
}

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch needs a patch file", cli.ErrUsage)
	}
	p, err := readValue(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	apply := patch.Apply
	if cfg.Merge || p.Kind() != value.ArrayKind {
		apply = patch.Merge
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	w := cfg.writer(cc)
	for _, file := range inputFiles(args[1:]) {
		doc, err := readValue(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		out, err := apply(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := cfg.emit(w, out); err != nil {
			return err
		}
	}
	return nil
}

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: eval needs an expression", cli.ErrUsage)
	}
	src := args[0]
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	w := cfg.writer(cc)
	for _, file := range inputFiles(args[1:]) {
		doc, err := readValue(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		out, err := query.Eval(src, doc)
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", file, err)
		}
		if err := cfg.emit(w, out); err != nil {
			return err
		}
	}
	return nil
}
