package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/dynparse"
)

func detectRun(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
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
		if cfg.All {
			for _, res := range dynparse.DetectAll(in.Data, filename) {
				fmt.Fprintf(cc.Out, "%s: %s (%s) %s\n", in.Name, res.Format,
					confString(res.Confidence, colored),
					strings.Join(res.Indicators, "; "))
			}
			continue
		}
		res := dynparse.Detect(in.Data, filename)
		fmt.Fprintf(cc.Out, "%s: %s (%s) %s\n", in.Name, res.Format,
			confString(res.Confidence, colored),
			strings.Join(res.Indicators, "; "))
	}
	return nil
}
