package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/dmelo/carteira/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	completion := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		completion.Sub[c.Name()] = &complete.Command{}
	}
	commander.Register(commander.HelpCommand(), "")
	completion.Complete("cta")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
