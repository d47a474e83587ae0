package renderer

import (
	"bytes"
	"fmt"

	"github.com/divitrek/divitrek"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders classified ledger rows, most recent first.
func TransactionsMarkdown(title string, entries []divitrek.Classified) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	table := md.TableSet{
		Header: []string{"Date", "Symbol", "Action", "Quantity", "Amount"},
		Rows:   [][]string{},
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		quantity := ""
		if !e.Quantity.IsZero() {
			quantity = e.Quantity.String()
		}
		table.Rows = append(table.Rows, []string{
			e.RunDate.String(),
			e.Symbol,
			e.Type.String(),
			quantity,
			moneyCell(e.Amount),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transactions.", len(entries)))
	return doc.String()
}
