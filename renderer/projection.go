package renderer

import (
	"bytes"
	"fmt"

	"github.com/dmelo/carteira"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the month-indexed net-worth series.
func ProjectionMarkdown(points []carteira.ProjectionPoint, annualRate float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Wealth Projection")
	if len(points) == 0 {
		doc.PlainText("Nothing to project.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d months at a reference rate of %s a year.",
		len(points)-1, carteira.Percent(annualRate)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Net Worth", "Expenses", "Return"},
	}
	for _, pt := range points {
		table.Rows = append(table.Rows, []string{
			pt.Label,
			carteira.BRL(pt.NetWorth).String(),
			carteira.BRL(pt.Expenses).Neg().SignedString(),
			carteira.BRL(pt.MonthlyReturn).SignedString(),
		})
	}
	doc.Table(table)

	last, first := points[len(points)-1], points[0]
	doc.PlainText(fmt.Sprintf("Projected change over the horizon: %s.",
		carteira.BRL(last.NetWorth).Sub(carteira.BRL(first.NetWorth)).SignedString()))

	return doc.String()
}
