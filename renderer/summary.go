package renderer

import (
	"bytes"
	"fmt"

	"github.com/divitrek/divitrek"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the per-asset holdings summary to a markdown string.
func SummaryMarkdown(r *divitrek.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings & Summary on %s", r.Date))

	table := md.TableSet{
		Header: []string{"Symbol", "Type", "Shares", "Cost Basis", "Avg Cost", "Last Div", "Next Div", "TTM Div", "Yield on Cost", "Yield"},
		Rows:   [][]string{},
	}
	for _, row := range r.Rows {
		avgCost := notAvailable
		if row.HasAverageCost {
			avgCost = row.AverageCost.String()
		}
		yieldOnCost := notAvailable
		if row.HasYieldOnCost {
			yieldOnCost = row.YieldOnCost.String()
		}
		yield := notAvailable
		if row.HasCalculatedYield {
			yield = row.CalculatedYield.String()
		}
		table.Rows = append(table.Rows, []string{
			row.Symbol,
			row.Type,
			row.Shares.String(),
			row.CostBasis.String(),
			avgCost,
			dateCell(row.LastDividend),
			dateCell(row.NextDividend),
			row.TTMDividends.String(),
			yieldOnCost,
			yield,
		})
	}
	doc.Table(table)

	for _, err := range r.Errs {
		doc.PlainText(fmt.Sprintf("⚠ %v", err))
	}
	return doc.String()
}
