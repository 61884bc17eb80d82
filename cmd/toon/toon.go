package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func toonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// inputs reads each named file, or stdin when no files are given. The
// stdin case reports "<stdin>" as its name so detection gets no
// extension signal.
func inputs(args []string) ([]namedInput, error) {
	if len(args) == 0 {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []namedInput{{Name: "<stdin>", Data: d}}, nil
	}
	res := make([]namedInput, 0, len(args))
	for _, name := range args {
		d, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		res = append(res, namedInput{Name: name, Data: d})
	}
	return res, nil
}

type namedInput struct {
	Name string
	Data []byte
}
