package divitrek

import "fmt"

// Position is the holding of a single asset on a given date, folded from the
// full ledger on every run.
//
// Cost basis follows the simplified model of the source tracker: buys and
// reinvestments increase it, sells never reduce it. Only the share count
// decreases on a sell. The average cost per share therefore reflects all
// shares ever acquired, not the currently held lot.
type Position struct {
	Symbol    string
	Date      Date // as-of date of the computation
	Shares    Quantity
	CostBasis Money
}

// NewPosition folds all of an asset's classified transactions up to and
// including the as-of date into its position.
//
// A negative cost basis can only come from malformed input and is reported as
// a hard error for this asset; other assets in the same run are unaffected.
func NewPosition(l *Ledger, symbol string, asOf Date) (Position, error) {
	p := Position{Symbol: symbol, Date: asOf}
	for _, e := range l.Entries(BySymbol(symbol), UpTo(asOf)) {
		p.Shares = p.Shares.Add(e.BuyQuantity()).Sub(e.SellQuantity())
		p.CostBasis = p.CostBasis.Add(e.BuyCost())
	}
	if p.CostBasis.IsNegative() {
		return Position{}, fmt.Errorf("invariant violation for %s: negative cost basis %s", symbol, p.CostBasis)
	}
	return p, nil
}

// AverageCost returns the average cost per share. It reports ok=false when
// the share count is zero or negative: an average cost of zero would wrongly
// suggest a free position, so the value is "not applicable" instead.
func (p Position) AverageCost() (Money, bool) {
	if !p.Shares.IsPositive() {
		return Money{}, false
	}
	return p.CostBasis.Div(p.Shares), true
}
