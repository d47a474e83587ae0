package divitrek

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// test transaction factories, using the raw broker conventions: negative
// amounts for cash out, negative quantities for sold shares.

func buyTx(date, symbol string, qty, amount float64) Transaction {
	return Transaction{
		Symbol:   symbol,
		RunDate:  MustDate(date),
		Action:   "YOU BOUGHT",
		Quantity: Q(qty),
		Amount:   USD(amount),
	}
}

func sellTx(date, symbol string, qty, amount float64) Transaction {
	return Transaction{
		Symbol:   symbol,
		RunDate:  MustDate(date),
		Action:   "YOU SOLD",
		Quantity: Q(qty),
		Amount:   USD(amount),
	}
}

func divTx(date, symbol string, amount float64) Transaction {
	return Transaction{
		Symbol:  symbol,
		RunDate: MustDate(date),
		Action:  "DIVIDEND RECEIVED",
		Amount:  USD(amount),
	}
}

func reinvestTx(date, symbol string, qty, amount float64) Transaction {
	return Transaction{
		Symbol:   symbol,
		RunDate:  MustDate(date),
		Action:   "REINVESTMENT",
		Quantity: Q(qty),
		Amount:   USD(amount),
	}
}
