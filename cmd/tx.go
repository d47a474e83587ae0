package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/divitrek/divitrek"
	"github.com/divitrek/divitrek/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	symbol string
	date   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the classified ledger transactions" }
func (*txCmd) Usage() string {
	return `dvt tx [-s <symbol>] [-d <date>]

  Lists the ledger transactions with their classified action, most recent
  first, optionally restricted to one asset and to a maximum date.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Only list transactions of this asset.")
	f.StringVar(&c.date, "d", divitrek.Today().String(), "Only list transactions up to this date (YYYY-MM-DD).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := divitrek.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filters := []func(divitrek.Classified) bool{divitrek.UpTo(on)}
	title := fmt.Sprintf("Transactions up to %s", on)
	if c.symbol != "" {
		symbol := strings.ToUpper(strings.TrimSpace(c.symbol))
		filters = append(filters, divitrek.BySymbol(symbol))
		title = fmt.Sprintf("%s transactions up to %s", symbol, on)
	}

	var entries []divitrek.Classified
	for _, e := range ledger.Entries(filters...) {
		entries = append(entries, e)
	}
	printMarkdown(renderer.TransactionsMarkdown(title, entries))

	return subcommands.ExitSuccess
}
