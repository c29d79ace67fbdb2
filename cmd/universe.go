package cmd

import (
	"context"
	"flag"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/renderer"
	"github.com/google/subcommands"
)

type universeCmd struct {
	deps
	prices bool
}

func (*universeCmd) Name() string     { return "universe" }
func (*universeCmd) Synopsis() string { return "list the sectors and symbols of the universe" }
func (*universeCmd) Usage() string {
	return `cmap universe [-prices]

  Lists the sectors and symbols of the configured universe. With -prices,
  the prices are downloaded and the first and last price of every symbol
  are listed too.
`
}

func (c *universeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.prices, "prices", false, "Download and list the first and last price of every symbol.")
}

func (c *universeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, u, err := loadConfig()
	if err != nil {
		return c.fail(err)
	}
	var prices *corrmap.PriceTable
	if c.prices {
		ctx = c.withLogger(ctx)
		src, release, err := c.openSource(ctx, cfg)
		if err != nil {
			return c.fail(err)
		}
		prices, err = src.Prices(ctx, u.Symbols(), u.Range)
		release()
		if err != nil {
			return c.fail(err)
		}
	}
	printMarkdown(c.out(), renderer.UniverseMarkdown(u, prices))
	return subcommands.ExitSuccess
}
