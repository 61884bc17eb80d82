package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/format"
)

type MainConfig struct {
	Strict bool `cli:"name=strict desc='fail on structural violations'"`
	Color  bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// useColor follows the -color flag when given, otherwise colors only
// when writing to a terminal.
func (cfg *MainConfig) useColor(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			// explicitly set to false
			return false
		}
		break
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// confString renders a confidence score, colored by how trustworthy it
// is: green at or above 0.8, yellow at or above 0.5, red below.
func confString(conf float64, colored bool) string {
	s := fmt.Sprintf("%.2f", conf)
	if !colored {
		return s
	}
	switch {
	case conf >= 0.8:
		return color.GreenString(s)
	case conf >= 0.5:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

type DetectConfig struct {
	*MainConfig
	All bool `cli:"name=all aliases=a desc='show every candidate format'"`

	Detect *cli.Command
}

type ParseConfig struct {
	*MainConfig
	J    bool `cli:"name=j aliases=json desc='print parsed data as json'"`
	Meta bool `cli:"name=meta desc='print parse metadata'"`

	Parse *cli.Command
}

type AnalyzeConfig struct {
	*MainConfig

	Analyze *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	InFormat, OutFormat *format.Format

	TableName string `cli:"name=table desc='table name for CSV conversions'"`
	Delim     string `cli:"name=d aliases=delim desc='TOON delimiter (default comma)'"`
	Marker    bool   `cli:"name=marker desc='emit length markers as [#N]'"`
	Indent    int    `cli:"name=indent desc='TOON indent width'"`

	Convert *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show round-trip value differences'"`

	Stats *cli.Command
}
