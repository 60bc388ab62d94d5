package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmelo/carteira"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name       string
	kind       string
	principal  float64
	multiplier float64
	deposit    string
	maturity   string
	taxed      bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new fixed-income position" }
func (*addCmd) Usage() string {
	return `cta add -name <name> -principal <amount> [-kind <kind>] [-multiplier <pct>] [-deposit <date>] [-maturity <date>] [-taxed]

  Records a position in the book. The multiplier is the percent of the CDI
  the position pays (100 tracks it exactly). LCI, LCA and poupanca default
  to tax exempt; -taxed overrides that.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Position name")
	f.StringVar(&c.kind, "kind", "cdb", "Instrument kind (cdb, lci, lca, tesouro, poupanca, outro)")
	f.Float64Var(&c.principal, "principal", 0, "Amount deposited, in BRL")
	f.Float64Var(&c.multiplier, "multiplier", 100, "Percent of the CDI the position pays")
	f.StringVar(&c.deposit, "deposit", "", "Deposit date (defaults to today)")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date, if any")
	f.BoolVar(&c.taxed, "taxed", false, "Force withholding even for kinds that default to exempt")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.principal <= 0 {
		return fail(fmt.Errorf("both -name and a positive -principal are required"))
	}
	kind, err := carteira.ParseKind(c.kind)
	if err != nil {
		return fail(err)
	}
	deposit, err := resolveDate(c.deposit)
	if err != nil {
		return fail(err)
	}

	p := carteira.NewPosition(c.name, kind, c.principal, c.multiplier, deposit)
	if c.maturity != "" {
		p.Maturity, err = carteira.ParseDate(c.maturity)
		if err != nil {
			return fail(err)
		}
	}
	if c.taxed {
		p.Exempt = false
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	book.Positions = append(book.Positions, p)
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s (%s) with %s\n", p.Name, p.Kind, carteira.BRL(p.Principal))
	return subcommands.ExitSuccess
}
