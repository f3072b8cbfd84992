package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/json-toolkit/go-json/codec"
	"github.com/json-toolkit/go-json/value"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize json output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *codec.Format

	Out      string
	OutW     io.Writer
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**codec.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := codec.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(_ *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, err
	}
	cfg.Out = v
	cfg.OutW = f
	cfg.CloseOut = f.Close
	return v, nil
}

func (cfg *MainConfig) writer(cc *cli.Context) io.Writer {
	if cfg.OutW != nil {
		return cfg.OutW
	}
	return cc.Out
}

func (cfg *MainConfig) inFormat() codec.Format {
	switch {
	case cfg.J:
		return codec.JSONFormat
	case cfg.Y:
		return codec.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return codec.JSONFormat
}

func (cfg *MainConfig) outFormat() codec.Format {
	switch {
	case cfg.J:
		return codec.JSONFormat
	case cfg.Y:
		return codec.YAMLFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return codec.JSONFormat
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// emit writes v to w in the configured output format, colorized when the
// output is a terminal (or -color is given) and the format is JSON.
func (cfg *MainConfig) emit(w io.Writer, v value.Value) error {
	f := cfg.outFormat()
	if f == codec.JSONFormat && cfg.useColor(w) {
		d, err := codec.MarshalJSONIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if err := writeColorJSON(w, d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
	return codec.Encode(w, v, f)
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type CmpConfig struct {
	*MainConfig
	Cmp *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	Merge bool `cli:"name=merge desc='apply as RFC 7386 merge patch'"`

	*MainConfig
	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}
