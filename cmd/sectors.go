package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/corrmap/renderer"
	"github.com/google/subcommands"
)

type sectorsCmd struct {
	deps
}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "print the sector vs. sector correlation matrix" }
func (*sectorsCmd) Usage() string {
	return `cmap sectors

  Prints the correlation matrix of the sector returns as a markdown table,
  followed by the sector highlights.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.withLogger(ctx)
	a, err := c.run(ctx)
	if err != nil {
		return c.fail(err)
	}
	printMarkdown(c.out(), renderer.SectorMatrixMarkdown(a.Sectors))

	h, err := a.Highlights()
	if err != nil {
		fmt.Fprintf(c.err(), "Warning: no sector highlights: %v\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Fprint(c.out(), renderer.Highlights(h))
	return subcommands.ExitSuccess
}
