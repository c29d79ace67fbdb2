// Command cmap computes and draws the return correlations of a universe of
// assets grouped in sectors.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/corrmap/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when the shell asks for completion
	cmd.Completion(flag.CommandLine).Complete("cmap")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
