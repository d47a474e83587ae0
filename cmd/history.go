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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	date string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the monthly dividend income history" }
func (*historyCmd) Usage() string {
	return `dvt history [-d <date>]

  Displays the cash dividend income of every asset over the 12 calendar
  months ending on the given date, with a monthly total. Months without a
  payment show as empty, never skipped, so rows always align.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divitrek.Today().String(), "End date of the trailing window (YYYY-MM-DD).")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := divitrek.NewIncomeReport(ledger, on)
	printMarkdown(renderer.IncomeMarkdown(report))

	return subcommands.ExitSuccess
}
