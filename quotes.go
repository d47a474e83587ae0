package divitrek

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// This file is the market-data collaborator: it refreshes the price snapshot
// the core consumes. The core itself never fetches anything; a failed or
// skipped refresh only means the calculated yield reads "n/a".

const quoteEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart/"

// quotePath extracts the regular market price from the chart payload.
const quotePath = "$.chart.result[0].meta.regularMarketPrice"

// fetchQuote fetches the latest quote for a symbol.
func fetchQuote(client *http.Client, symbol string) (float64, error) {
	var jobj any
	if err := jwget(client, quoteEndpoint+symbol, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}
	jval, err := jsonpath.Get(quotePath, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q %w", symbol, quotePath, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or a
	// single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q not a number: %v", symbol, quotePath, jval)
	}
	if val <= 0 {
		return math.NaN(), fmt.Errorf("empty quote for %q", symbol)
	}
	return val, nil
}

// UpdatePrices fetches the latest quote for every given symbol and merges it
// into the snapshot. Symbols that fail keep their previous price; all
// failures are joined into the returned error.
func UpdatePrices(prices Prices, symbols []string, currency string) error {
	client := newDailyCachingClient()
	var errs error
	for _, symbol := range symbols {
		val, err := fetchQuote(client, symbol)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		prices[symbol] = M(val, currency)
	}
	return errs
}
