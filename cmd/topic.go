package cmd

import (
	"context"
	"flag"

	"github.com/etnz/corrmap/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	deps
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `cmap topic [<topic>...]

Show documentation for the given topics, "*" shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.Read(topics...)
	if err != nil {
		return c.fail(err)
	}
	printMarkdown(c.out(), doc)
	return subcommands.ExitSuccess
}
