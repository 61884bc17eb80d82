package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/codec"
	"github.com/varchiver/toon-format/go-toon/dynparse"
	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/format"
)

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := inputs(args)
	if err != nil {
		return err
	}
	colored := cfg.useColor(cc)
	for _, in := range ins {
		filename := in.Name
		if filename == "<stdin>" {
			filename = ""
		}
		res := dynparse.Parse(in.Data,
			dynparse.Filename(filename),
			dynparse.Strict(cfg.Strict),
		)
		fmt.Fprintf(cc.Out, "# %s: %s (%s) in %s\n", in.Name, res.Format,
			confString(res.Confidence, colored), res.Elapsed)
		for _, w := range res.Warnings {
			fmt.Fprintf(cc.Out, "# warning: %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintf(cc.Out, "# error: %s\n", e)
		}
		if cfg.Meta {
			d, err := yaml.Marshal(res.Metadata)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "# metadata:\n%s", d)
		}
		if res.Data == nil {
			continue
		}
		if cfg.J {
			c, _ := codec.For(format.JSONFormat)
			d, err := c.Encode(res.Data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "%s\n", d)
			continue
		}
		s, err := encode.String(res.Data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", s)
	}
	return nil
}
