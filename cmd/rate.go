package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmelo/carteira"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "display the current CDI reference rate" }
func (*rateCmd) Usage() string {
	return `cta rate

  Fetches and displays the current annual CDI rate, with its daily and
  monthly equivalents.
`
}

func (*rateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	annual := rates.CurrentAnnualRate(ctx)
	fmt.Printf("CDI: %s a year (%.4f%% a day, %s a month)\n",
		carteira.Percent(annual),
		carteira.AnnualToDaily(annual),
		carteira.Percent(carteira.AnnualToMonthly(annual)),
	)
	return subcommands.ExitSuccess
}
