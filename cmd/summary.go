package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divitrek/divitrek"
	"github.com/divitrek/divitrek/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-asset holdings and income summary" }
func (*summaryCmd) Usage() string {
	return `dvt summary [-d <date>]

  Displays one row per asset: shares, cost basis, average cost, last and next
  dividend dates, trailing-twelve-month dividends and yields.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divitrek.Today().String(), "As-of date for the summary (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	schedule, err := DecodeSchedule()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := divitrek.NewSummaryReport(ledger, on, prices, schedule)
	printMarkdown(renderer.SummaryMarkdown(report))

	return subcommands.ExitSuccess
}
