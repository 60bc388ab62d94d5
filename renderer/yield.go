// Package renderer turns engine outputs into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/dmelo/carteira"
	md "github.com/nao1215/markdown"
)

// YieldMarkdown renders the full gross-to-net breakdown of a single
// position at a valuation date.
func YieldMarkdown(p carteira.Position, on carteira.Date, y carteira.YieldBreakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s) on %s", p.Name, p.Kind, on))
	doc.PlainText(fmt.Sprintf("%d calendar days, %d business days since deposit on %s",
		y.CalendarDays, y.BusinessDays, p.Deposit))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", md.Bold("Amount")},
		Rows: [][]string{
			{"Principal", carteira.BRL(p.Principal).String()},
			{"Gross Value", carteira.BRL(y.GrossValue).String()},
			{"Gross Return", carteira.BRL(y.GrossReturn).SignedString()},
		},
	}
	if p.Exempt {
		table.Rows = append(table.Rows, []string{"Withholding", "exempt"})
	} else {
		table.Rows = append(table.Rows,
			[]string{fmt.Sprintf("IOF (%s)", y.IOFRate), carteira.BRL(y.IOF).Neg().SignedString()},
			[]string{fmt.Sprintf("Income Tax (%s)", y.IncomeTaxRate), carteira.BRL(y.IncomeTax).Neg().SignedString()},
		)
	}
	table.Rows = append(table.Rows,
		[]string{md.Bold("Net Value"), md.Bold(carteira.BRL(y.NetValue).String())},
		[]string{"Net Return", carteira.BRL(y.NetReturn).SignedString()},
		[]string{"Effective Annual Rate", y.EffectiveAnnualRate.String()},
	)
	doc.Table(table)

	return doc.String()
}
