package cmd

import (
	"context"
	"flag"

	"github.com/dmelo/carteira/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	date string
	rate float64
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the book with current valuations" }
func (*listCmd) Usage() string {
	return `cta list [-d <date>] [-rate <annual>]

  Displays every position valued at the date, and every obligation with its
  pending amount.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (defaults to today)")
	f.Float64Var(&c.rate, "rate", 0, "Force an annual reference rate instead of fetching the CDI")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	on, err := resolveDate(c.date)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BookMarkdown(book, on, resolveRate(ctx, c.rate)))
	return subcommands.ExitSuccess
}
