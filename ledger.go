package divitrek

import (
	"fmt"
	"iter"
	"log"
	"sort"
)

// RowError reports a single ledger row that could not be used, together with
// its position in the source. A RowError never aborts a batch: the row is
// excluded and the rest of the ledger computes normally.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d rejected: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Ledger is the append-only set of classified brokerage transactions for all
// assets.
//
// In a Ledger transactions are always in chronological order. The ledger is an
// immutable snapshot from the computation's point of view: every report is
// recomputed fully from it, no intermediate state is kept between runs.
type Ledger struct {
	entries []Classified
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Classified, 0)}
}

// Append classifies raw transactions and appends them to this ledger,
// maintaining the chronological order of entries. Rows whose symbol is empty
// after trimming are dropped with a notice.
func (l *Ledger) Append(txs ...Transaction) {
	for _, tx := range txs {
		c, ok := Classify(tx)
		if !ok {
			log.Printf("%v: dropping row with empty symbol %q", tx.RunDate, tx.Action)
			continue
		}
		l.entries = append(l.entries, c)
	}
	l.stableSort()
}

// stableSort sorts the ledger by run date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].RunDate.Before(l.entries[j].RunDate)
	})
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// OldestTransactionDate returns the date of the earliest entry, or the zero
// date when the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].RunDate
}

// NewestTransactionDate returns the date of the latest entry, or the zero
// date when the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].RunDate
}

// Entries returns an iterator that yields each classified entry in
// chronological order, keeping only entries accepted by all filters.
func (l *Ledger) Entries(filters ...func(Classified) bool) iter.Seq2[int, Classified] {
	return func(yield func(int, Classified) bool) {
	scan:
		for i, e := range l.entries {
			for _, filter := range filters {
				if !filter(e) {
					continue scan
				}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters entries by asset symbol.
func BySymbol(symbol string) func(Classified) bool {
	return func(e Classified) bool { return e.Symbol == symbol }
}

// UpTo returns a predicate that filters entries on or before the given date.
func UpTo(max Date) func(Classified) bool {
	return func(e Classified) bool { return !e.RunDate.After(max) }
}

// Symbols iterates over the unique asset symbols of the ledger in
// lexicographic order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		symbols := make([]string, 0)
		for _, e := range l.entries {
			if _, ok := visited[e.Symbol]; !ok {
				visited[e.Symbol] = struct{}{}
				symbols = append(symbols, e.Symbol)
			}
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// DividendDates returns the sorted run dates of an asset's cash dividend
// payments up to and including the given date.
func (l *Ledger) DividendDates(symbol string, max Date) []Date {
	dates := make([]Date, 0)
	for _, e := range l.Entries(BySymbol(symbol), UpTo(max)) {
		if e.IsDividendIncome() {
			dates = append(dates, e.RunDate)
		}
	}
	// entries are chronological already, but the contract is a sorted list.
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// LastDividendDate returns the most recent cash dividend run date for an
// asset, or false if the asset never paid one.
func (l *Ledger) LastDividendDate(symbol string, max Date) (Date, bool) {
	dates := l.DividendDates(symbol, max)
	if len(dates) == 0 {
		return Date{}, false
	}
	return dates[len(dates)-1], true
}

// LastDividendAmounts returns up to n most recent cash dividend amounts for an
// asset, oldest first.
func (l *Ledger) LastDividendAmounts(symbol string, max Date, n int) []Money {
	amounts := make([]Money, 0)
	for _, e := range l.Entries(BySymbol(symbol), UpTo(max)) {
		if e.IsDividendIncome() {
			amounts = append(amounts, e.CashDividend())
		}
	}
	if len(amounts) > n {
		amounts = amounts[len(amounts)-n:]
	}
	return amounts
}
