package divitrek

import (
	"fmt"
	"strings"
	"sync"
)

// Asset type labels for the summary report.
const (
	AssetStock = "STOCK"
	AssetETF   = "ETF"
)

// AssetSummary is the consolidated per-asset row handed to external
// consumers: holdings, cost, dividend history and yields, joined from the
// position, income and cadence computations.
//
// The Has* fields are explicit "not available" sentinels: a yield is only
// meaningful with a positive denominator, and a missing price must degrade
// the calculated yield, never fail the run.
type AssetSummary struct {
	Symbol    string
	Type      string // AssetStock or AssetETF
	Shares    Quantity
	CostBasis Money

	AverageCost    Money
	HasAverageCost bool

	LastDividend Date // zero when the asset never paid a cash dividend
	NextDividend Date // declared when present, else inferred; zero when unknown

	TTMDividends Money

	YieldOnCost    Percent
	HasYieldOnCost bool

	CalculatedYield    Percent
	HasCalculatedYield bool
}

// SummaryReport is the full per-asset summary of the ledger on a given date.
// Rows are ordered by symbol regardless of computation order. Assets whose
// computation failed are excluded from Rows and reported in Errs; one bad
// asset never blanks out the batch.
type SummaryReport struct {
	Date Date
	Rows []AssetSummary
	Errs []error
}

// NewSummaryReport joins positions, trailing income and cadence into one
// summary row per asset.
//
// Assets are independent, so they are computed concurrently; the result is
// assembled by symbol index so the output is deterministic regardless of
// completion order.
func NewSummaryReport(l *Ledger, asOf Date, prices Prices, schedule Schedule) *SummaryReport {
	report := &SummaryReport{Date: asOf}

	symbols := make([]string, 0)
	for s := range l.Symbols() {
		symbols = append(symbols, s)
	}

	rows := make([]AssetSummary, len(symbols))
	errs := make([]error, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			rows[i], errs[i] = newAssetSummary(l, symbol, asOf, prices, schedule)
		}(i, symbol)
	}
	wg.Wait()

	for i := range symbols {
		if errs[i] != nil {
			report.Errs = append(report.Errs, errs[i])
			continue
		}
		report.Rows = append(report.Rows, rows[i])
	}
	return report
}

// newAssetSummary computes the summary row of a single asset.
func newAssetSummary(l *Ledger, symbol string, asOf Date, prices Prices, schedule Schedule) (AssetSummary, error) {
	position, err := NewPosition(l, symbol, asOf)
	if err != nil {
		return AssetSummary{}, fmt.Errorf("cannot summarize %s: %w", symbol, err)
	}

	row := AssetSummary{
		Symbol:       symbol,
		Type:         assetType(l, symbol),
		Shares:       position.Shares,
		CostBasis:    position.CostBasis,
		TTMDividends: TrailingIncome(l, symbol, asOf),
	}
	row.AverageCost, row.HasAverageCost = position.AverageCost()

	if last, ok := l.LastDividendDate(symbol, asOf); ok {
		row.LastDividend = last
	}
	cadence := NewCadence(l, symbol, asOf, schedule)
	if next, ok := cadence.NextPay(); ok {
		row.NextDividend = next
	}

	if row.CostBasis.IsPositive() {
		row.YieldOnCost = Percent(row.TTMDividends.DivMoney(row.CostBasis).value.InexactFloat64())
		row.HasYieldOnCost = true
	}
	if price, ok := prices.Lookup(symbol); ok && row.Shares.IsPositive() {
		marketValue := price.Mul(row.Shares)
		row.CalculatedYield = Percent(row.TTMDividends.DivMoney(marketValue).value.InexactFloat64())
		row.HasCalculatedYield = true
	}
	return row, nil
}

// assetType reports an asset as an ETF when any of its ledger rows describes
// it as one, else as a stock.
func assetType(l *Ledger, symbol string) string {
	for _, e := range l.Entries(BySymbol(symbol)) {
		if strings.Contains(strings.ToUpper(e.Description), "ETF") {
			return AssetETF
		}
	}
	return AssetStock
}
