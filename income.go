package divitrek

// incomeMonths is the fixed number of trailing months represented in the
// income history, gap-free and zero-filled.
const incomeMonths = 12

// TrailingIncome computes the trailing-twelve-months cash dividend income of
// an asset: the sum of cash dividends with a run date in
// [asOf minus 12 months plus one day, asOf], both ends inclusive.
func TrailingIncome(l *Ledger, symbol string, asOf Date) Money {
	from := asOf.AddMonth(-12).Add(1)
	var total Money
	for _, e := range l.Entries(BySymbol(symbol), UpTo(asOf)) {
		if !e.IsDividendIncome() || e.RunDate.Before(from) {
			continue
		}
		total = total.Add(e.CashDividend())
	}
	return total
}

// MonthlyIncome is the cash dividend income of one asset in one calendar
// month. Month is the first day of the bucket's month.
type MonthlyIncome struct {
	Month  Date
	Amount Money
}

// IncomeHistory is the trailing monthly dividend income of a single asset:
// exactly incomeMonths buckets ending at the as-of date's month, zero-filled
// where no dividend occurred, so multi-asset tables always align.
type IncomeHistory struct {
	Symbol string
	Months []MonthlyIncome
}

// NewIncomeHistory buckets an asset's cash dividends by calendar month over
// the trailing window ending at the as-of date.
func NewIncomeHistory(l *Ledger, symbol string, asOf Date) IncomeHistory {
	h := IncomeHistory{Symbol: symbol, Months: make([]MonthlyIncome, incomeMonths)}
	for i := range h.Months {
		h.Months[i].Month = asOf.StartOfMonth().AddMonth(i - incomeMonths + 1)
	}
	first := h.Months[0].Month

	for _, e := range l.Entries(BySymbol(symbol), UpTo(asOf)) {
		if !e.IsDividendIncome() || e.RunDate.Before(first) {
			continue
		}
		month := e.RunDate.StartOfMonth()
		for i := range h.Months {
			if h.Months[i].Month == month {
				h.Months[i].Amount = h.Months[i].Amount.Add(e.CashDividend())
				break
			}
		}
	}
	return h
}

// Total sums all buckets of the history.
func (h IncomeHistory) Total() Money {
	var total Money
	for _, m := range h.Months {
		total = total.Add(m.Amount)
	}
	return total
}

// IncomeReport is the aligned monthly dividend income of every asset in the
// ledger over the same trailing window.
type IncomeReport struct {
	Date   Date
	Months []Date // first day of each bucket month, oldest first
	Rows   []IncomeHistory
}

// NewIncomeReport computes the monthly income history of every asset in the
// ledger, rows ordered by symbol.
func NewIncomeReport(l *Ledger, asOf Date) *IncomeReport {
	report := &IncomeReport{Date: asOf}
	for i := 0; i < incomeMonths; i++ {
		report.Months = append(report.Months, asOf.StartOfMonth().AddMonth(i-incomeMonths+1))
	}
	for symbol := range l.Symbols() {
		report.Rows = append(report.Rows, NewIncomeHistory(l, symbol, asOf))
	}
	return report
}

// MonthTotals sums every asset's income per bucket, aligned with Months.
func (r *IncomeReport) MonthTotals() []Money {
	totals := make([]Money, len(r.Months))
	for _, row := range r.Rows {
		for i, m := range row.Months {
			totals[i] = totals[i].Add(m.Amount)
		}
	}
	return totals
}
