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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	date string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "display the 12-month dividend income forecast" }
func (*forecastCmd) Usage() string {
	return `dvt forecast [-d <date>]

  Projects the dividend income of every asset over the 12 calendar months
  following the given date. Declared amounts are shown as-is; amounts
  estimated from payment history are marked with *.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divitrek.Today().String(), "As-of date for the forecast (YYYY-MM-DD).")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	schedule, err := DecodeSchedule()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := divitrek.NewForecastReport(ledger, on, schedule)
	printMarkdown(renderer.ForecastMarkdown(report))

	return subcommands.ExitSuccess
}
