package divitrek

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Prices is a snapshot of current prices keyed by symbol, supplied by an
// external market-data collaborator. A missing symbol degrades the dependent
// derived fields (calculated yield) to "not available"; it never fails a run.
type Prices map[string]Money

// Lookup returns the current price for a symbol, if known and positive.
func (p Prices) Lookup(symbol string) (Money, bool) {
	if p == nil {
		return Money{}, false
	}
	price, ok := p[symbol]
	if !ok || !price.IsPositive() {
		return Money{}, false
	}
	return price, true
}

// DecodePrices reads a price snapshot in JSONL format: one object per line
// with a symbol and an amount.
func DecodePrices(r io.Reader) (Prices, error) {
	prices := make(Prices)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		var temp struct {
			Symbol string `json:"symbol"`
			amountRow
		}
		if err := json.Unmarshal(scanner.Bytes(), &temp); err != nil {
			return nil, fmt.Errorf("cannot parse price line %d: %w", line, err)
		}
		prices[strings.ToUpper(strings.TrimSpace(temp.Symbol))] = temp.Money()
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading prices: %w", err)
	}
	return prices, nil
}

// EncodePrices persists a price snapshot in JSONL format, sorted by symbol.
func EncodePrices(w io.Writer, prices Prices) error {
	symbols := make([]string, 0, len(prices))
	for s := range prices {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		var jw jsonObjectWriter
		jw.Append("symbol", s)
		jw.EmbedFrom(prices[s])
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal price for %q: %w", s, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write price for %q: %w", s, err)
		}
	}
	return nil
}

// DecodeSchedule reads a declared-dividend table in JSONL format: one object
// per line with a symbol, ex-date, pay-date and amount.
func DecodeSchedule(r io.Reader) (Schedule, error) {
	schedule := make(Schedule)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		var temp struct {
			Symbol   string          `json:"symbol"`
			ExDate   Date            `json:"exDate"`
			PayDate  Date            `json:"payDate"`
			Amount   decimal.Decimal `json:"amount"`
			Currency string          `json:"currency"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &temp); err != nil {
			return nil, fmt.Errorf("cannot parse schedule line %d: %w", line, err)
		}
		symbol := strings.ToUpper(strings.TrimSpace(temp.Symbol))
		schedule[symbol] = DeclaredDividend{
			Symbol:  symbol,
			ExDate:  temp.ExDate,
			PayDate: temp.PayDate,
			Amount:  M(temp.Amount, temp.Currency),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading schedule: %w", err)
	}
	return schedule, nil
}

// EncodeSchedule persists a declared-dividend table in JSONL format, sorted
// by symbol.
func EncodeSchedule(w io.Writer, schedule Schedule) error {
	symbols := make([]string, 0, len(schedule))
	for s := range schedule {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		d := schedule[s]
		var jw jsonObjectWriter
		jw.Append("symbol", d.Symbol)
		jw.Optional("exDate", d.ExDate)
		jw.Optional("payDate", d.PayDate)
		jw.EmbedFrom(d.Amount)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal schedule for %q: %w", s, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write schedule for %q: %w", s, err)
		}
	}
	return nil
}
