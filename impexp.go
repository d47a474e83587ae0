package divitrek

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains functions to ingest a broker activity export.
// The import format is the CSV a brokerage account download produces: one
// header row, then one activity row per line.

// importColumn normalizes a CSV header cell to a canonical column name.
func importColumn(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.NewReplacer(" ", "_", "($)", "", "(", "", ")", "").Replace(h)
	return strings.Trim(h, "_")
}

// parseImportDate accepts the date formats seen in broker exports:
// "01/10/2024" and "2024-01-10".
func parseImportDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("1/2/2006", s); err == nil {
		return NewDate(t.Date()), nil
	}
	return ParseDate(s)
}

// parseImportNumber parses a numeric CSV cell, tolerating currency symbols,
// thousands separators and blank cells (blank reads as zero).
func parseImportNumber(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(s)
}

// ImportTransactions reads a broker activity CSV export from 'r' and returns
// the raw transactions it contains together with the rows it had to reject.
//
// Rows that fail to parse a date or a number are rejected individually with a
// RowError carrying their line number; a bad row never aborts the batch. The
// error return is reserved for a broken stream or a missing header.
func ImportTransactions(r io.Reader, currency string) ([]Transaction, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read export header: %w", err)
	}
	index := make(map[string]int)
	for i, h := range header {
		index[importColumn(h)] = i
	}
	if _, ok := index["run_date"]; !ok {
		return nil, nil, fmt.Errorf("export header has no Run Date column: %q", header)
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var txs []Transaction
	var rejected []RowError
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}
		// Exports end with disclaimer lines that are not activity rows.
		if strings.TrimSpace(strings.Join(record, "")) == "" || cell(record, "run_date") == "" {
			continue
		}

		runDate, err := parseImportDate(cell(record, "run_date"))
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}
		quantity, err := parseImportNumber(cell(record, "quantity"))
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("invalid quantity: %w", err)})
			continue
		}
		price, err := parseImportNumber(cell(record, "price"))
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("invalid price: %w", err)})
			continue
		}
		amount, err := parseImportNumber(cell(record, "amount"))
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("invalid amount: %w", err)})
			continue
		}

		tx := Transaction{
			Symbol:      cell(record, "symbol"),
			RunDate:     runDate,
			Action:      cell(record, "action"),
			Description: cell(record, "description"),
			Quantity:    Q(quantity),
			Price:       M(price, currency),
			Amount:      M(amount, currency),
		}
		if settle := cell(record, "settlement_date"); strings.TrimSpace(settle) != "" {
			d, err := parseImportDate(settle)
			if err != nil {
				rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("invalid settlement date: %w", err)})
				continue
			}
			tx.SettleDate = d
		}
		txs = append(txs, tx)
	}
	return txs, rejected, nil
}
