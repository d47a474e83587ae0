package divitrek

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountRow is a specialized struct to read a ledger amount in two fields.
type amountRow struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRow) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger decodes transactions from a stream of JSONL data, one raw
// transaction per line, and returns a chronologically sorted Ledger.
//
// Lines that fail to parse are collected as RowErrors and excluded; a bad row
// never aborts the rest of the batch. The error return is reserved for stream
// failures.
func DecodeLedger(r io.Reader) (*Ledger, []RowError, error) {
	ledger := NewLedger()
	var rejected []RowError
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var temp struct {
			Symbol      string          `json:"symbol"`
			Date        Date            `json:"date"`
			Action      string          `json:"action"`
			Description string          `json:"description"`
			Quantity    Quantity        `json:"quantity"`
			Price       json.RawMessage `json:"price"`
			SettleDate  Date            `json:"settleDate"`
			amountRow
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}

		tx := Transaction{
			Symbol:      temp.Symbol,
			RunDate:     temp.Date,
			Action:      temp.Action,
			Description: temp.Description,
			Quantity:    temp.Quantity,
			Amount:      temp.Money(),
			SettleDate:  temp.SettleDate,
		}
		if len(temp.Price) > 0 {
			var price amountRow
			if err := json.Unmarshal(temp.Price, &price); err != nil {
				rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("invalid price: %w", err)})
				continue
			}
			tx.Price = price.Money()
		}
		if tx.RunDate.IsZero() {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("missing run date")})
			continue
		}
		ledger.Append(tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, rejected, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, rejected, nil
}

// EncodeTransaction marshals a single raw transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in canonical JSONL format:
// one transaction per line, chronological order, stable key order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, e := range ledger.Entries() {
		if err := EncodeTransaction(w, e.Transaction); err != nil {
			return err
		}
	}
	return nil
}
