package divitrek

import "sort"

// forecastMonths is the number of forward calendar months projected.
const forecastMonths = 12

// Provenance distinguishes a projected amount sourced from a declared
// schedule from one statistically inferred. A forecast cell is never both.
type Provenance int

const (
	// ProvenanceNone marks a month with no qualifying expected payment.
	ProvenanceNone Provenance = iota
	// ProvenanceDeclared marks an amount from the declared schedule.
	ProvenanceDeclared
	// ProvenanceInferred marks an amount estimated from payment history.
	ProvenanceInferred
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceDeclared:
		return "declared"
	case ProvenanceInferred:
		return "inferred"
	default:
		return "none"
	}
}

// ForecastCell is one asset-month of the forward projection.
type ForecastCell struct {
	Month      Date // first day of the projected month
	Amount     Money
	Provenance Provenance
}

// Forecast is the 12-month forward dividend projection of a single asset.
type Forecast struct {
	Symbol string
	Cells  []ForecastCell
}

// NewForecast projects an asset's dividend income over the next 12 calendar
// months following the as-of date.
//
// For each month, a declared pay-date with a declared amount wins outright;
// only when no declared payment lands in the month is the inferred next
// payment date considered, projecting the median of the last three observed
// cash dividends. Months with no qualifying date project zero.
func NewForecast(l *Ledger, symbol string, asOf Date, c Cadence) Forecast {
	f := Forecast{Symbol: symbol, Cells: make([]ForecastCell, forecastMonths)}

	for i := range f.Cells {
		month := asOf.StartOfMonth().AddMonth(i + 1)
		cell := ForecastCell{Month: month}
		end := month.EndOfMonth()

		declared := c.Declared != nil &&
			!c.Declared.PayDate.IsZero() && !c.Declared.Amount.IsZero() &&
			!c.Declared.PayDate.Before(month) && !c.Declared.PayDate.After(end)
		inferred := !c.InferredNextPay.IsZero() &&
			!c.InferredNextPay.Before(month) && !c.InferredNextPay.After(end)

		switch {
		case declared:
			cell.Amount = c.Declared.Amount
			cell.Provenance = ProvenanceDeclared
		case inferred:
			cell.Amount = medianAmount(l.LastDividendAmounts(symbol, asOf, 3))
			cell.Provenance = ProvenanceInferred
		}
		f.Cells[i] = cell
	}
	return f
}

// medianAmount returns the median of the given amounts, computed exactly on
// the decimal values. An empty input yields zero; an even count yields the
// mean of the two central values.
func medianAmount(amounts []Money) Money {
	if len(amounts) == 0 {
		return Money{}
	}
	sorted := append([]Money(nil), amounts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(Q(2))
}

// ForecastReport is the aligned forward projection of every asset in the
// ledger.
type ForecastReport struct {
	Date   Date
	Months []Date // first day of each projected month, nearest first
	Rows   []Forecast
}

// NewForecastReport projects every asset in the ledger, rows ordered by
// symbol.
func NewForecastReport(l *Ledger, asOf Date, schedule Schedule) *ForecastReport {
	report := &ForecastReport{Date: asOf}
	for i := 0; i < forecastMonths; i++ {
		report.Months = append(report.Months, asOf.StartOfMonth().AddMonth(i+1))
	}
	for symbol := range l.Symbols() {
		c := NewCadence(l, symbol, asOf, schedule)
		report.Rows = append(report.Rows, NewForecast(l, symbol, asOf, c))
	}
	return report
}

// MonthTotals sums every asset's projection per month, aligned with Months.
func (r *ForecastReport) MonthTotals() []Money {
	totals := make([]Money, len(r.Months))
	for _, row := range r.Rows {
		for i, cell := range row.Cells {
			totals[i] = totals[i].Add(cell.Amount)
		}
	}
	return totals
}
