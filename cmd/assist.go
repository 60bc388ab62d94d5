package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmelo/carteira"
	"github.com/dmelo/carteira/agent"
	"github.com/dmelo/carteira/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	months int
	rate   float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `cta assist [-months <n>] [-rate <annual>] [question...]

  Starts an interactive advisor seeded with the current book and a
  projection. Requires Gemini credentials in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 12, "Projection horizon handed to the advisor")
	f.Float64Var(&c.rate, "rate", 0, "Force an annual reference rate instead of fetching the CDI")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	rate := resolveRate(ctx, c.rate)
	today := carteira.Today()
	points := carteira.Project(today, book.Positions, book.Obligations, c.months, rate, 0)

	briefing := renderer.BookMarkdown(book, today, rate) + "\n" + renderer.ProjectionMarkdown(points, rate)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.New(os.Stdout, os.Stdin)
	if err := advisor.Start(ctx, client, briefing); err != nil {
		return fail(err)
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := advisor.Run(ctx, prompts...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
