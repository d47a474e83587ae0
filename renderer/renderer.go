// Package renderer renders the computed reports to markdown for the terminal
// or for publishing.
package renderer

import (
	"strings"

	"github.com/divitrek/divitrek"
)

// notAvailable is the explicit sentinel rendered when a derived field has no
// meaningful value (missing price, non-positive shares or cost basis).
const notAvailable = "n/a"

// monthLabel formats a bucket month as a compact column header ("JAN 25").
func monthLabel(d divitrek.Date) string {
	return strings.ToUpper(d.Format("Jan 06"))
}

// dateCell formats an optional date, empty when unknown.
func dateCell(d divitrek.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// moneyCell formats an amount, blank when zero to keep wide tables readable.
func moneyCell(m divitrek.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}
