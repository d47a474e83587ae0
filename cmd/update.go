package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divitrek/divitrek"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh the price snapshot from the market" }
func (*updateCmd) Usage() string {
	return `dvt update

  Fetches the latest quote of every asset in the ledger and writes the price
  snapshot file. A symbol whose quote cannot be fetched keeps its previous
  price; failures are reported but never blank out the snapshot.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var symbols []string
	for symbol := range ledger.Symbols() {
		symbols = append(symbols, symbol)
	}
	if len(symbols) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: the ledger is empty, nothing to update.")
		return subcommands.ExitSuccess
	}

	if err := divitrek.UpdatePrices(prices, symbols, *currency); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some quotes could not be fetched:\n%v\n", err)
	}

	out, err := os.Create(*pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating prices file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := divitrek.EncodePrices(out, prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully updated %d prices in %s\n", len(prices), *pricesFile)
	return subcommands.ExitSuccess
}
