package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/dynparse"
	"github.com/varchiver/toon-format/go-toon/ir"
)

func analyze(cfg *AnalyzeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Analyze.Parse(cc, args)
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
		content := string(in.Data)
		fmt.Fprintf(cc.Out, "%s:\n", in.Name)
		fmt.Fprintf(cc.Out, "  lines: %d\n", strings.Count(content, "\n")+1)
		fmt.Fprintf(cc.Out, "  characters: %d\n", len(content))
		fmt.Fprintf(cc.Out, "  words: %d\n", len(strings.Fields(content)))

		res := dynparse.Parse(in.Data,
			dynparse.Filename(filename),
			dynparse.Strict(cfg.Strict),
		)
		fmt.Fprintf(cc.Out, "  format: %s (%s)\n", res.Format,
			confString(res.Confidence, colored))
		if det, ok := res.Metadata["detection"].(map[string]any); ok {
			if inds, ok := det["indicators"].([]string); ok && len(inds) > 0 {
				fmt.Fprintf(cc.Out, "  indicators: %s\n", strings.Join(inds, "; "))
			}
		}
		fmt.Fprintf(cc.Out, "  elapsed: %s\n", res.Elapsed)
		for _, w := range res.Warnings {
			fmt.Fprintf(cc.Out, "  warning: %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintf(cc.Out, "  error: %s\n", e)
		}
		if res.IsSuccessful() {
			preview(cc, res.Data)
		}
	}
	return nil
}

// preview summarizes the top level of the parsed value: the first five
// keys with a type and size for containers, a truncated rendering for
// scalars.
func preview(cc *cli.Context, data *ir.Node) {
	if data.Type != ir.ObjectType {
		fmt.Fprintf(cc.Out, "  data: %s\n", data.Type)
		return
	}
	fmt.Fprintf(cc.Out, "  data: object with %d keys\n", len(data.Fields))
	for i, k := range data.Fields {
		if i == 5 {
			fmt.Fprintf(cc.Out, "    ... and %d more\n", len(data.Fields)-5)
			break
		}
		v := data.Values[i]
		switch v.Type {
		case ir.ArrayType:
			fmt.Fprintf(cc.Out, "    %s: array(%d)\n", k, len(v.Values))
		case ir.ObjectType:
			fmt.Fprintf(cc.Out, "    %s: object(%d)\n", k, len(v.Fields))
		default:
			s := scalarPreview(v)
			fmt.Fprintf(cc.Out, "    %s: %s\n", k, s)
		}
	}
}

func scalarPreview(v *ir.Node) string {
	d, err := v.MarshalJSON()
	if err != nil {
		return "?"
	}
	s := string(d)
	if len(s) > 50 {
		s = s[:50] + "..."
	}
	return s
}
