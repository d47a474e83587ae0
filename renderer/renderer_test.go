package renderer

import (
	"strings"
	"testing"

	"github.com/divitrek/divitrek"
)

func testLedger(t *testing.T) *divitrek.Ledger {
	t.Helper()
	input := `{"symbol":"AAPL","date":"2024-01-10","action":"YOU BOUGHT","quantity":10,"amount":-1500,"currency":"USD"}
{"symbol":"AAPL","date":"2024-01-12","action":"DIVIDEND RECEIVED","amount":5,"currency":"USD"}
{"symbol":"GROW","date":"2024-02-01","action":"YOU BOUGHT","quantity":5,"amount":-250,"currency":"USD"}
`
	ledger, rejected, err := divitrek.DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(rejected) != 0 {
		t.Fatalf("rejected rows: %v", rejected)
	}
	return ledger
}

func TestSummaryMarkdown(t *testing.T) {
	ledger := testLedger(t)
	report := divitrek.NewSummaryReport(ledger, divitrek.MustDate("2024-12-31"), nil, nil)

	got := SummaryMarkdown(report)
	for _, want := range []string{"Holdings & Summary on 2024-12-31", "AAPL", "GROW", "STOCK"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output misses %q:\n%s", want, got)
		}
	}
	// no price snapshot: the calculated yield column reads n/a.
	if !strings.Contains(got, notAvailable) {
		t.Errorf("summary output misses the %q sentinel:\n%s", notAvailable, got)
	}
}

func TestIncomeMarkdown(t *testing.T) {
	ledger := testLedger(t)
	report := divitrek.NewIncomeReport(ledger, divitrek.MustDate("2024-12-31"))

	got := IncomeMarkdown(report)
	for _, want := range []string{"Monthly Dividend History ending 2024-12-31", "JAN 24", "DEC 24", "AAPL", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("income output misses %q:\n%s", want, got)
		}
	}
}

func TestForecastMarkdown_MarksInferred(t *testing.T) {
	ledger := testLedger(t)
	// as of end of January the single payment infers a monthly cadence whose
	// next payment (2024-02-12) lands in the first projected month.
	report := divitrek.NewForecastReport(ledger, divitrek.MustDate("2024-01-31"), nil)

	got := ForecastMarkdown(report)
	if !strings.Contains(got, "Dividend Forecast from 2024-01-31") {
		t.Errorf("forecast output misses its title:\n%s", got)
	}
	// AAPL has a single payment: cadence defaults to monthly, so the next
	// inferred payment is projected and must carry the inferred mark.
	if !strings.Contains(got, "*") || !strings.Contains(got, "estimated from payment history") {
		t.Errorf("forecast output misses the inferred mark or its legend:\n%s", got)
	}
}

func TestCadenceMarkdown(t *testing.T) {
	ledger := testLedger(t)
	asOf := divitrek.MustDate("2024-12-31")
	var cadences []divitrek.Cadence
	for symbol := range ledger.Symbols() {
		cadences = append(cadences, divitrek.NewCadence(ledger, symbol, asOf, nil))
	}

	got := CadenceMarkdown(asOf, cadences)
	for _, want := range []string{"Payment Cadence on 2024-12-31", "AAPL", "Monthly", "inferred"} {
		if !strings.Contains(got, want) {
			t.Errorf("cadence output misses %q:\n%s", want, got)
		}
	}
	// GROW never paid: both last and next pay read n/a.
	if !strings.Contains(got, notAvailable) {
		t.Errorf("cadence output misses the %q sentinel:\n%s", notAvailable, got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	ledger := testLedger(t)
	var entries []divitrek.Classified
	for _, e := range ledger.Entries() {
		entries = append(entries, e)
	}

	got := TransactionsMarkdown("Transactions", entries)
	for _, want := range []string{"2024-01-10", "buy", "dividend-cash", "3 transactions."} {
		if !strings.Contains(got, want) {
			t.Errorf("transactions output misses %q:\n%s", want, got)
		}
	}
}
