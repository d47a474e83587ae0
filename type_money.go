package divitrek

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency, expressed in major
// units (dollars, not cents).
type Money struct {
	value decimal.Decimal
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// according to its currency conventions.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Abs() Money                { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money      { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money      { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) DivMoney(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }
func (m Money) InexactFloat64() float64   { return m.value.InexactFloat64() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON implements the json.Marshaler interface for Money.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
