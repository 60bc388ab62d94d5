// Package cmd implements the CLI application to track a fixed-income book.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/dmelo/carteira"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "carteira.json", "Path to the book file holding positions and obligations (JSON format)")

// Commands lists the subcommands for the main package to register.
var Commands = []subcommands.Command{
	&addCmd{},
	&chargeCmd{},
	&payCmd{},
	&listCmd{},
	&yieldCmd{},
	&projectCmd{},
	&rateCmd{},
	&assistCmd{},
}

// rates is the process-wide reference-rate cache; reports within the same
// run never fetch twice.
var rates carteira.RateProvider = carteira.NewCachedRate(carteira.NewSGSProvider())

// loadBook opens the app book file; a missing file yields an empty book.
func loadBook() (*carteira.Book, error) {
	return carteira.LoadBook(*bookFile)
}

// saveBook writes the app book file.
func saveBook(b *carteira.Book) error {
	return carteira.SaveBook(*bookFile, b)
}

// resolveRate returns the rate forced by the -rate flag, or the current
// reference rate when the flag was left at zero.
func resolveRate(ctx context.Context, flagRate float64) float64 {
	if flagRate > 0 {
		return flagRate
	}
	return rates.CurrentAnnualRate(ctx)
}

// resolveDate parses the -d flag, defaulting to today when empty.
func resolveDate(flagDate string) (carteira.Date, error) {
	if flagDate == "" {
		return carteira.Today(), nil
	}
	return carteira.ParseDate(flagDate)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
