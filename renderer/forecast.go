package renderer

import (
	"bytes"
	"fmt"

	"github.com/divitrek/divitrek"
	md "github.com/nao1215/markdown"
)

// ForecastMarkdown renders the 12-month forward projection. Inferred amounts
// are marked with a trailing "*"; declared amounts carry no mark, and the
// legend only appears when at least one cell is inferred.
func ForecastMarkdown(r *divitrek.ForecastReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividend Forecast from %s", r.Date))

	header := []string{"Symbol"}
	for _, m := range r.Months {
		header = append(header, monthLabel(m))
	}
	table := md.TableSet{Header: header, Rows: [][]string{}}

	inferred := false
	for _, row := range r.Rows {
		cells := []string{row.Symbol}
		for _, c := range row.Cells {
			cells = append(cells, forecastCell(c))
			if c.Provenance == divitrek.ProvenanceInferred {
				inferred = true
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	totals := []string{"Total"}
	for _, t := range r.MonthTotals() {
		totals = append(totals, t.String())
	}
	table.Rows = append(table.Rows, totals)

	doc.Table(table)
	if inferred {
		doc.PlainText("\\* estimated from payment history")
	}
	return doc.String()
}

func forecastCell(c divitrek.ForecastCell) string {
	switch c.Provenance {
	case divitrek.ProvenanceDeclared:
		return c.Amount.String()
	case divitrek.ProvenanceInferred:
		return c.Amount.String() + "*"
	default:
		return ""
	}
}
