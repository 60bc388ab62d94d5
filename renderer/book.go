package renderer

import (
	"bytes"
	"fmt"

	"github.com/dmelo/carteira"
	md "github.com/nao1215/markdown"
)

// BookMarkdown renders the recorded positions and obligations, valuing each
// position at the given date and rate.
func BookMarkdown(b *carteira.Book, on carteira.Date, annualRate float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Book on %s", on))

	if len(b.Positions) == 0 {
		doc.PlainText("No positions recorded.")
	} else {
		doc.H2("Positions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Name", "Kind", "Principal", "% CDI", "Net Value"},
		}
		total := carteira.BRL(0)
		for _, p := range b.Positions {
			y := carteira.Evaluate(p, on, annualRate)
			total = total.Add(carteira.BRL(y.NetValue))
			table.Rows = append(table.Rows, []string{
				p.Name,
				p.Kind.String(),
				carteira.BRL(p.Principal).String(),
				fmt.Sprintf("%.0f%%", p.Multiplier),
				carteira.BRL(y.NetValue).String(),
			})
		}
		table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", "", md.Bold(total.String())})
		doc.Table(table)
	}

	if len(b.Obligations) > 0 {
		doc.H2("Obligations")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Description", "Monthly", "Pending", "Installment"},
		}
		for _, o := range b.Obligations {
			installment := fmt.Sprintf("%d/%d", o.Current, o.Installments)
			if o.Paid {
				installment = "paid"
			}
			table.Rows = append(table.Rows, []string{
				o.Description,
				carteira.BRL(o.MonthlyAmount()).String(),
				carteira.BRL(o.PendingTotal()).String(),
				installment,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
