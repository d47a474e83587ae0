package divitrek

import (
	"fmt"
	"strings"
)

// ActionType identifies what a raw brokerage row actually did, inferred from
// its free-text action label.
type ActionType int

const (
	// ActionOther is assigned when no classification rule matches.
	ActionOther ActionType = iota
	// ActionBuy is a purchase of shares for cash.
	ActionBuy
	// ActionSell is a disposal of shares for cash.
	ActionSell
	// ActionDividendCash is a dividend paid out as cash.
	ActionDividendCash
	// ActionDividendReinvested is a dividend immediately reinvested in shares.
	ActionDividendReinvested
)

func (a ActionType) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	case ActionDividendCash:
		return "dividend-cash"
	case ActionDividendReinvested:
		return "dividend-reinvested"
	case ActionOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParseActionType parses a string into an ActionType.
func ParseActionType(s string) (ActionType, error) {
	switch s {
	case "buy":
		return ActionBuy, nil
	case "sell":
		return ActionSell, nil
	case "dividend-cash":
		return ActionDividendCash, nil
	case "dividend-reinvested":
		return ActionDividendReinvested, nil
	case "other":
		return ActionOther, nil
	default:
		return ActionOther, fmt.Errorf("unknown action type: %q", s)
	}
}

// classificationRule maps a set of label keywords to an action type.
type classificationRule struct {
	keywords []string
	action   ActionType
}

// classificationRules is the ordered rule table for classifying free-text
// action labels. Rules are evaluated top to bottom and the first match wins:
// broker exports routinely produce labels that would match several rules
// ("REINVESTMENT ... BOUGHT"), and the more specific dividend rules must win.
// New broker formats extend this table, not the classifier.
var classificationRules = []classificationRule{
	{keywords: []string{"DIVIDEND RECEIVED"}, action: ActionDividendCash},
	{keywords: []string{"REINVESTMENT"}, action: ActionDividendReinvested},
	{keywords: []string{"BOUGHT", "BUY"}, action: ActionBuy},
	{keywords: []string{"SOLD", "SELL"}, action: ActionSell},
}

// ClassifyAction resolves a free-text action label to an ActionType using the
// ordered rule table. The match is a case-insensitive substring search.
func ClassifyAction(label string) ActionType {
	upper := strings.ToUpper(label)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.action
			}
		}
	}
	return ActionOther
}

// Transaction is a single raw row from the brokerage activity ledger.
//
// Quantity is signed: positive increases the share count, negative decreases
// it. Amount is signed with the broker convention: negative for cash
// outflows (purchases), positive for inflows (sales, dividends).
type Transaction struct {
	Symbol      string   // ticker symbol, normalized upper-case
	RunDate     Date     // date the activity was recorded
	Action      string   // free-text action label from the broker
	Description string   // free-text security description
	Quantity    Quantity // signed number of shares
	Price       Money    // unit price, zero when not applicable
	Amount      Money    // signed gross amount, broker convention
	SettleDate  Date     // optional settlement date
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Symbol == o.Symbol &&
		t.RunDate == o.RunDate &&
		t.Action == o.Action &&
		t.Description == o.Description &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Amount.Equal(o.Amount) &&
		t.SettleDate == o.SettleDate
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping a stable field order for the canonical ledger format.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", t.Symbol)
	w.Append("date", t.RunDate)
	w.Append("action", t.Action)
	w.Optional("description", t.Description)
	w.Append("quantity", t.Quantity)
	w.Optional("price", t.Price)
	w.EmbedFrom(t.Amount)
	if !t.SettleDate.IsZero() {
		w.Append("settleDate", t.SettleDate)
	}
	return w.MarshalJSON()
}

// Classified is a transaction augmented with its immutable action type.
// All derived fields are pure functions of the row; the source quantity and
// amount are never mutated.
type Classified struct {
	Transaction
	Type ActionType
}

// Classify normalizes the symbol and tags the transaction with its inferred
// action type. The returned row reports ok=false when the symbol is empty
// after trimming, in which case the row must be dropped.
func Classify(tx Transaction) (c Classified, ok bool) {
	tx.Symbol = strings.ToUpper(strings.TrimSpace(tx.Symbol))
	if tx.Symbol == "" {
		return Classified{}, false
	}
	return Classified{Transaction: tx, Type: ClassifyAction(tx.Action)}, true
}

// IsDividendIncome reports whether the row is a cash dividend payment.
func (c Classified) IsDividendIncome() bool { return c.Type == ActionDividendCash }

// IsReinvestment reports whether the row is a dividend reinvestment.
func (c Classified) IsReinvestment() bool { return c.Type == ActionDividendReinvested }

// BuyQuantity returns the absolute quantity acquired by this row. Reinvested
// dividends acquire shares and therefore count as buys.
func (c Classified) BuyQuantity() Quantity {
	if c.Type == ActionBuy || c.Type == ActionDividendReinvested {
		return c.Quantity.Abs()
	}
	return Quantity{}
}

// SellQuantity returns the absolute quantity disposed of by this row. Broker
// exports record sold quantities as negative; the sign is the action's, the
// magnitude is the quantity's.
func (c Classified) SellQuantity() Quantity {
	if c.Type == ActionSell {
		return c.Quantity.Abs()
	}
	return Quantity{}
}

// BuyCost returns the absolute cash cost of an acquisition, including
// reinvestment purchases at their reinvested amount.
func (c Classified) BuyCost() Money {
	if c.Type == ActionBuy || c.Type == ActionDividendReinvested {
		return c.Amount.Abs()
	}
	return Money{}
}

// CashDividend returns the absolute cash dividend amount of the row.
func (c Classified) CashDividend() Money {
	if c.Type == ActionDividendCash {
		return c.Amount.Abs()
	}
	return Money{}
}

// ReinvestedDividend returns the absolute reinvested dividend amount of the row.
func (c Classified) ReinvestedDividend() Money {
	if c.Type == ActionDividendReinvested {
		return c.Amount.Abs()
	}
	return Money{}
}

// NetContribution returns the net cash the investor put in (negative) or took
// out (positive) with this row. Dividends and reinvestments are not
// contributions: that money came from the position, not from the investor.
func (c Classified) NetContribution() Money {
	switch c.Type {
	case ActionBuy:
		return c.Amount.Abs().Neg()
	case ActionSell:
		return c.Amount.Abs()
	default:
		return Money{}
	}
}
