package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/convert"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := inputs(args)
	if err != nil {
		return err
	}
	if len(ins) != 1 {
		return fmt.Errorf("%w: stats takes one JSON input", cli.ErrUsage)
	}
	in := ins[0]
	st, err := convert.EstimateTokenSavings(in.Data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "json tokens (estimated): %d\n", st.JSONTokens)
	fmt.Fprintf(cc.Out, "toon tokens (estimated): %d\n", st.TOONTokens)
	fmt.Fprintf(cc.Out, "token savings: %.1f%%\n", st.SavingsPercent)
	fmt.Fprintf(cc.Out, "size reduction: %.1f%%\n", st.SizeReduction)
	if cfg.Diff {
		d, err := convert.RoundTripDiff(in.Data)
		if err != nil {
			return err
		}
		if d == "" {
			fmt.Fprintln(cc.Out, "round trip: lossless")
		} else {
			fmt.Fprintf(cc.Out, "round trip differences:\n%s\n", d)
		}
	}
	return nil
}
