package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dmelo/carteira"
	"github.com/dmelo/carteira/renderer"
	"github.com/google/subcommands"
)

// yieldCmd holds the flags for the 'yield' subcommand.
type yieldCmd struct {
	date string
	rate float64
	name string
}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "display the gross-to-net yield breakdown of positions" }
func (*yieldCmd) Usage() string {
	return `cta yield [-d <date>] [-rate <annual>] [-name <position>]

  Displays the full yield breakdown of every position (or just the named
  one) at the valuation date: gross value, both withholding taxes, net
  value and the effective annual rate.
`
}

func (c *yieldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (defaults to today)")
	f.Float64Var(&c.rate, "rate", 0, "Force an annual reference rate instead of fetching the CDI")
	f.StringVar(&c.name, "name", "", "Only report the position with this name")
}

func (c *yieldCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	on, err := resolveDate(c.date)
	if err != nil {
		return fail(err)
	}
	rate := resolveRate(ctx, c.rate)

	var reports []string
	for _, p := range book.Positions {
		if c.name != "" && p.Name != c.name {
			continue
		}
		reports = append(reports, renderer.YieldMarkdown(p, on, carteira.Evaluate(p, on, rate)))
	}
	if len(reports) == 0 {
		return fail(fmt.Errorf("no matching position in the book"))
	}
	printMarkdown(strings.Join(reports, "\n"))
	return subcommands.ExitSuccess
}
