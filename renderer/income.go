package renderer

import (
	"bytes"
	"fmt"

	"github.com/divitrek/divitrek"
	md "github.com/nao1215/markdown"
)

// IncomeMarkdown renders the aligned monthly dividend history to a markdown
// string: one row per asset, one column per trailing month, plus a totals row.
func IncomeMarkdown(r *divitrek.IncomeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Dividend History ending %s", r.Date))

	header := []string{"Symbol"}
	for _, m := range r.Months {
		header = append(header, monthLabel(m))
	}
	table := md.TableSet{Header: header, Rows: [][]string{}}

	for _, row := range r.Rows {
		cells := []string{row.Symbol}
		for _, m := range row.Months {
			cells = append(cells, moneyCell(m.Amount))
		}
		table.Rows = append(table.Rows, cells)
	}

	totals := []string{"Total"}
	for _, t := range r.MonthTotals() {
		totals = append(totals, t.String())
	}
	table.Rows = append(table.Rows, totals)

	doc.Table(table)
	return doc.String()
}
