package renderer

import (
	"bytes"
	"fmt"

	"github.com/divitrek/divitrek"
	md "github.com/nao1215/markdown"
)

// CadenceMarkdown renders each asset's payment rhythm: frequency label, last
// observed payment, and the next expected one with its source.
func CadenceMarkdown(asOf divitrek.Date, cadences []divitrek.Cadence) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payment Cadence on %s", asOf))

	table := md.TableSet{
		Header: []string{"Symbol", "Frequency", "Last Pay", "Next Pay", "Source"},
		Rows:   [][]string{},
	}
	for _, c := range cadences {
		next, source := notAvailable, ""
		if d, ok := c.NextPay(); ok {
			next = d.String()
			source = "inferred"
			if c.Declared != nil && !c.Declared.PayDate.IsZero() {
				source = "declared"
			}
		}
		lastPay := notAvailable
		if !c.LastPay.IsZero() {
			lastPay = c.LastPay.String()
		}
		table.Rows = append(table.Rows, []string{
			c.Symbol, c.Frequency(), lastPay, next, source,
		})
	}
	doc.Table(table)
	return doc.String()
}
