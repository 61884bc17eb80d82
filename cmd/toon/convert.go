package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/varchiver/toon-format/go-toon/codec"
	"github.com/varchiver/toon-format/go-toon/convert"
	"github.com/varchiver/toon-format/go-toon/detect"
	"github.com/varchiver/toon-format/go-toon/encode"
	"github.com/varchiver/toon-format/go-toon/format"
)

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: -O <format> is required", cli.ErrUsage)
	}
	ins, err := inputs(args)
	if err != nil {
		return err
	}
	if len(ins) != 1 {
		return fmt.Errorf("%w: convert takes one input", cli.ErrUsage)
	}
	in := ins[0]

	inFmt := format.UnknownFormat
	if cfg.InFormat != nil {
		inFmt = *cfg.InFormat
	} else {
		filename := in.Name
		if filename == "<stdin>" {
			filename = ""
		}
		inFmt = detect.Detect(in.Data, filename).Format
	}
	outFmt := *cfg.OutFormat

	out, err := cfg.run(inFmt, outFmt, in.Data)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

// run prefers the dedicated converter paths, which carry table naming
// and token-efficient layout, and falls back to plain codec piping for
// every other format pair.
func (cfg *ConvertConfig) run(inFmt, outFmt format.Format, data []byte) ([]byte, error) {
	switch {
	case inFmt.IsJSON() && outFmt.IsTOON():
		s, err := convert.JSONToTOON(data, cfg.encOpts()...)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case inFmt.IsTOON() && outFmt.IsJSON():
		return convert.TOONToJSON(data)
	case inFmt.IsJSON() && outFmt.IsCSV():
		return convert.JSONToCSV(data)
	case inFmt.IsCSV() && outFmt.IsJSON():
		return convert.CSVToJSON(data, cfg.TableName)
	case inFmt.IsTOON() && outFmt.IsCSV():
		return convert.TOONToCSV(data)
	case inFmt.IsCSV() && outFmt.IsTOON():
		s, err := convert.CSVToTOON(data, cfg.TableName, cfg.encOpts()...)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	}
	from, ok := codec.For(inFmt)
	if !ok {
		return nil, fmt.Errorf("no codec for input format %s", inFmt)
	}
	to, ok := codec.For(outFmt)
	if !ok {
		return nil, fmt.Errorf("no codec for output format %s", outFmt)
	}
	node, err := from.Decode(data)
	if err != nil {
		return nil, err
	}
	return to.Encode(node)
}

func (cfg *ConvertConfig) encOpts() []encode.EncodeOption {
	opts := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.LengthMarker(cfg.Marker),
	}
	switch cfg.Delim {
	case "", ",", "comma":
	case "tab", "\\t":
		opts = append(opts, encode.Delimiter("\t"))
	case "pipe":
		opts = append(opts, encode.Delimiter("|"))
	default:
		opts = append(opts, encode.Delimiter(cfg.Delim))
	}
	return opts
}
