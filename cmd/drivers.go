package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/renderer"
	"github.com/google/subcommands"
)

type driversCmd struct {
	deps
	symbol string
	count  int
}

func (*driversCmd) Name() string     { return "drivers" }
func (*driversCmd) Synopsis() string { return "list the most and least correlated symbols of a symbol" }
func (*driversCmd) Usage() string {
	return `cmap drivers -s <symbol> [-n <count>]

  Prints the symbols whose returns are the most and the least correlated
  with the returns of <symbol>, as a markdown table.
`
}

func (c *driversCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to report the correlation drivers of.")
	f.IntVar(&c.count, "n", corrmap.DefaultDrivers, "Number of drivers at each end.")
}

func (c *driversCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target := corrmap.ParseSymbol(c.symbol)
	if target == "" {
		fmt.Fprintln(c.err(), "Error: -s is required")
		return subcommands.ExitUsageError
	}
	if c.count < 1 {
		fmt.Fprintln(c.err(), "Error: -n must be positive")
		return subcommands.ExitUsageError
	}

	ctx = c.withLogger(ctx)
	a, err := c.run(ctx)
	if err != nil {
		return c.fail(err)
	}
	d, err := corrmap.Drivers(a.Assets, target, c.count)
	if errors.Is(err, corrmap.ErrSymbolNotFound) {
		fmt.Fprintf(c.err(), "Warning: %s not found in data.\n", target)
		return subcommands.ExitFailure
	}
	if err != nil {
		return c.fail(err)
	}
	printMarkdown(c.out(), renderer.DriversMarkdown(d, a.Universe.Range.Label()))
	return subcommands.ExitSuccess
}
