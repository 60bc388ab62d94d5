package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmelo/carteira"
	"github.com/dmelo/carteira/renderer"
	"github.com/google/subcommands"
)

// maxHorizon is the supported projection length in months.
const maxHorizon = 120

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	months       int
	contribution float64
	rate         float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project net worth month by month" }
func (*projectCmd) Usage() string {
	return `cta project [-months <n>] [-contribution <amount>] [-rate <annual>]

  Builds the month-indexed net-worth series from today: positions
  re-evaluated each month, a recurring contribution compounding at the
  monthly rate, and obligation installments charged as they fall due.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 12, "Projection horizon in months (up to 120)")
	f.Float64Var(&c.contribution, "contribution", 0, "Recurring monthly contribution, in BRL")
	f.Float64Var(&c.rate, "rate", 0, "Force an annual reference rate instead of fetching the CDI")
}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 0 || c.months > maxHorizon {
		return fail(fmt.Errorf("-months must be between 0 and %d", maxHorizon))
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	rate := resolveRate(ctx, c.rate)
	points := carteira.Project(carteira.Today(), book.Positions, book.Obligations, c.months, rate, c.contribution)
	printMarkdown(renderer.ProjectionMarkdown(points, rate))
	return subcommands.ExitSuccess
}
