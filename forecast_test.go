package divitrek

import "testing"

// quarterly payer: $5 on the 10th of Jan, Apr, Jul, Oct 2024.
func quarterlyLedger() *Ledger {
	ledger := NewLedger()
	ledger.Append(
		buyTx("2024-01-05", "AAPL", 10, -1500),
		divTx("2024-01-10", "AAPL", 5),
		divTx("2024-04-10", "AAPL", 5),
		divTx("2024-07-10", "AAPL", 5),
		divTx("2024-10-10", "AAPL", 5),
	)
	return ledger
}

func TestNewForecast_Inferred(t *testing.T) {
	ledger := quarterlyLedger()
	asOf := MustDate("2024-12-31")
	c := NewCadence(ledger, "AAPL", asOf, nil)

	f := NewForecast(ledger, "AAPL", asOf, c)
	if len(f.Cells) != 12 {
		t.Fatalf("cells = %d, want 12", len(f.Cells))
	}
	if f.Cells[0].Month != MustDate("2025-01-01") {
		t.Errorf("first month = %s, want 2025-01-01", f.Cells[0].Month)
	}
	if f.Cells[11].Month != MustDate("2025-12-01") {
		t.Errorf("last month = %s, want 2025-12-01", f.Cells[11].Month)
	}

	// the inferred next payment (2025-01-10) lands in January.
	jan := f.Cells[0]
	if jan.Provenance != ProvenanceInferred {
		t.Errorf("January provenance = %v, want inferred", jan.Provenance)
	}
	if !jan.Amount.Equal(USD(5)) {
		t.Errorf("January amount = %s, want $5.00", jan.Amount)
	}

	// only the next payment is projected, later quarters stay empty.
	for i := 1; i < 12; i++ {
		if f.Cells[i].Provenance != ProvenanceNone || !f.Cells[i].Amount.IsZero() {
			t.Errorf("month %s = %s (%v), want empty", f.Cells[i].Month, f.Cells[i].Amount, f.Cells[i].Provenance)
		}
	}
}

func TestNewForecastReport_ConsecutiveMonths(t *testing.T) {
	// a day-31 as-of date must still project 12 consecutive forward months,
	// with no duplicate or skipped columns.
	report := NewForecastReport(quarterlyLedger(), MustDate("2024-12-31"), nil)
	for i, m := range report.Months {
		if want := MustDate("2025-01-01").AddMonth(i); m != want {
			t.Errorf("month %d = %s, want %s", i, m, want)
		}
	}
}

func TestNewForecast_DeclaredWins(t *testing.T) {
	ledger := quarterlyLedger()
	asOf := MustDate("2024-12-31")
	schedule := Schedule{
		"AAPL": {Symbol: "AAPL", PayDate: MustDate("2025-01-20"), Amount: USD(0.3)},
	}
	c := NewCadence(ledger, "AAPL", asOf, schedule)

	f := NewForecast(ledger, "AAPL", asOf, c)
	jan := f.Cells[0]
	// both the declared pay date and the inferred one land in January: the
	// declared amount wins, they are never combined.
	if jan.Provenance != ProvenanceDeclared {
		t.Errorf("January provenance = %v, want declared", jan.Provenance)
	}
	if !jan.Amount.Equal(USD(0.3)) {
		t.Errorf("January amount = %s, want $0.30", jan.Amount)
	}
}

func TestNewForecast_DeclaredWithoutAmountFallsBack(t *testing.T) {
	ledger := quarterlyLedger()
	asOf := MustDate("2024-12-31")
	// a declared pay date with no amount cannot be projected as declared.
	schedule := Schedule{
		"AAPL": {Symbol: "AAPL", PayDate: MustDate("2025-01-20")},
	}
	c := NewCadence(ledger, "AAPL", asOf, schedule)

	f := NewForecast(ledger, "AAPL", asOf, c)
	jan := f.Cells[0]
	if jan.Provenance != ProvenanceInferred {
		t.Errorf("January provenance = %v, want inferred", jan.Provenance)
	}
	if !jan.Amount.Equal(USD(5)) {
		t.Errorf("January amount = %s, want $5.00", jan.Amount)
	}
}

func TestNewForecast_NoHistory(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(buyTx("2024-01-10", "GROW", 10, -1500))
	asOf := MustDate("2024-12-31")
	c := NewCadence(ledger, "GROW", asOf, nil)

	f := NewForecast(ledger, "GROW", asOf, c)
	for _, cell := range f.Cells {
		if cell.Provenance != ProvenanceNone || !cell.Amount.IsZero() {
			t.Errorf("month %s = %s (%v), want empty: no history means no projection", cell.Month, cell.Amount, cell.Provenance)
		}
	}
}

func TestMedianAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amounts []Money
		want    Money
	}{
		{"empty", nil, Money{}},
		{"single", []Money{USD(5)}, USD(5)},
		{"odd", []Money{USD(3), USD(5), USD(4)}, USD(4)},
		{"even", []Money{USD(3), USD(5)}, USD(4)},
		{"unsorted", []Money{USD(6), USD(2), USD(4)}, USD(4)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := medianAmount(tc.amounts); !got.Equal(tc.want) {
				t.Errorf("medianAmount = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNewForecastReport(t *testing.T) {
	ledger := quarterlyLedger()
	ledger.Append(buyTx("2024-01-10", "GROW", 10, -1500))
	asOf := MustDate("2024-12-31")

	report := NewForecastReport(ledger, asOf, nil)
	if len(report.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(report.Rows))
	}
	if report.Rows[0].Symbol != "AAPL" || report.Rows[1].Symbol != "GROW" {
		t.Errorf("row order = %s, %s", report.Rows[0].Symbol, report.Rows[1].Symbol)
	}
	totals := report.MonthTotals()
	if !totals[0].Equal(USD(5)) {
		t.Errorf("January total = %s, want $5.00", totals[0])
	}
}
