package divitrek

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DeclaredDividend is an externally sourced, declared next dividend for an
// asset: ex-date, pay-date and amount as announced. Declared data always
// takes precedence over inferred data in consumer-facing fields.
type DeclaredDividend struct {
	Symbol  string `json:"symbol"`
	ExDate  Date   `json:"exDate"`
	PayDate Date   `json:"payDate"`
	Amount  Money  `json:"amount"`
}

// Schedule is the declared-dividend table keyed by symbol. A nil or empty
// schedule simply means everything falls back to inference.
type Schedule map[string]DeclaredDividend

// Lookup returns the declared dividend for a symbol, if any.
func (s Schedule) Lookup(symbol string) (DeclaredDividend, bool) {
	if s == nil {
		return DeclaredDividend{}, false
	}
	d, ok := s[symbol]
	return d, ok
}

// Months-between buckets for the payment frequency inference.
const (
	weeklyMonths     = 0.25
	monthlyMonths    = 1
	quarterlyMonths  = 3
	semiAnnualMonths = 6
)

// InferMonthsBetween estimates the number of months between an asset's
// dividend payments from its historical payment dates.
//
// With fewer than 3 payments there is not enough history to measure a gap
// reliably, so the result defaults to monthly. This is a deliberate,
// documented heuristic, not a hidden guess; callers can detect the degraded
// state by counting the payment dates themselves.
//
// Otherwise the median of the successive day-gaps between sorted payment
// dates selects a bucket: up to 10 days reads as weekly, up to 45 as monthly,
// up to 110 as quarterly, anything longer as semi-annual.
func InferMonthsBetween(payDates []Date) float64 {
	if len(payDates) < 3 {
		return monthlyMonths
	}
	sorted := append([]Date(nil), payDates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, float64(sorted[i].DaysSince(sorted[i-1])))
	}
	sort.Float64s(gaps)
	median := stat.Quantile(0.5, stat.LinInterp, gaps, nil)

	switch {
	case median <= 10:
		return weeklyMonths
	case median <= 45:
		return monthlyMonths
	case median <= 110:
		return quarterlyMonths
	default:
		return semiAnnualMonths
	}
}

// Cadence is the dividend-payment rhythm of a single asset: the inferred gap
// between payments, the last observed payment, the declared next dividend
// when one is known, and the inferred next payment date.
type Cadence struct {
	Symbol          string
	MonthsBetween   float64 // inferred, including sub-monthly buckets (0.25 = weekly)
	LastPay         Date    // last observed cash dividend, zero if none
	Declared        *DeclaredDividend
	InferredNextPay Date // zero when no payment was ever observed
}

// NewCadence infers the dividend cadence of an asset from its payment history
// up to the as-of date, attaching the declared schedule entry when available.
func NewCadence(l *Ledger, symbol string, asOf Date, schedule Schedule) Cadence {
	c := Cadence{Symbol: symbol}
	dates := l.DividendDates(symbol, asOf)
	c.MonthsBetween = InferMonthsBetween(dates)
	if len(dates) > 0 {
		c.LastPay = dates[len(dates)-1]
		if c.MonthsBetween >= 1 {
			c.InferredNextPay = c.LastPay.AddMonth(int(math.Round(c.MonthsBetween)))
		} else {
			c.InferredNextPay = c.LastPay.Add(7)
		}
	}
	if d, ok := schedule.Lookup(symbol); ok {
		c.Declared = &d
	}
	return c
}

// Frequency returns a human-readable label for the inferred cadence.
func (c Cadence) Frequency() string {
	switch c.MonthsBetween {
	case weeklyMonths:
		return "Weekly"
	case monthlyMonths:
		return "Monthly"
	case quarterlyMonths:
		return "Quarterly"
	case semiAnnualMonths:
		return "Semi-annual"
	default:
		return "Irregular"
	}
}

// NextPay returns the asset's next expected payment date, preferring the
// declared pay-date over the inferred one. It reports ok=false when neither
// is known.
func (c Cadence) NextPay() (Date, bool) {
	if c.Declared != nil && !c.Declared.PayDate.IsZero() {
		return c.Declared.PayDate, true
	}
	if !c.InferredNextPay.IsZero() {
		return c.InferredNextPay, true
	}
	return Date{}, false
}
