package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmelo/carteira"
	"github.com/google/subcommands"
)

// chargeCmd holds the flags for the 'charge' subcommand.
type chargeCmd struct {
	description  string
	total        float64
	installments int
	start        string
	deferred     string
}

func (*chargeCmd) Name() string     { return "charge" }
func (*chargeCmd) Synopsis() string { return "record a recurring expense split in installments" }
func (*chargeCmd) Usage() string {
	return `cta charge -desc <description> -total <amount> [-n <installments>] [-start <date>] [-defer <date>]

  Records an obligation: a total amount split evenly over monthly
  installments starting at the start month. A deferred date pushes the
  first charge to that date.
`
}

func (c *chargeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Obligation description")
	f.Float64Var(&c.total, "total", 0, "Total amount, in BRL")
	f.IntVar(&c.installments, "n", 1, "Number of monthly installments")
	f.StringVar(&c.start, "start", "", "Start date (defaults to today)")
	f.StringVar(&c.deferred, "defer", "", "Deferred payment date, if any")
}

func (c *chargeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" || c.total <= 0 {
		return fail(fmt.Errorf("both -desc and a positive -total are required"))
	}
	start, err := resolveDate(c.start)
	if err != nil {
		return fail(err)
	}

	o := carteira.NewObligation(c.description, c.total, c.installments, start)
	if c.deferred != "" {
		o.Deferred, err = carteira.ParseDate(c.deferred)
		if err != nil {
			return fail(err)
		}
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	book.Obligations = append(book.Obligations, o)
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %q: %d x %s\n", o.Description, o.Installments, carteira.BRL(o.MonthlyAmount()))
	return subcommands.ExitSuccess
}

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	description string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark an obligation as fully paid" }
func (*payCmd) Usage() string {
	return `cta pay -desc <description>

  Marks the obligation with that description as paid; it stops charging
  into projections.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description of the obligation to pay off")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" {
		return fail(fmt.Errorf("-desc is required"))
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	for i := range book.Obligations {
		if book.Obligations[i].Description == c.description {
			book.Obligations[i].Paid = true
			if err := saveBook(book); err != nil {
				return fail(err)
			}
			fmt.Printf("Paid off %q\n", c.description)
			return subcommands.ExitSuccess
		}
	}
	return fail(fmt.Errorf("no obligation named %q", c.description))
}
