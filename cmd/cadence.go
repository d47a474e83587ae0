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

// cadenceCmd holds the flags for the 'cadence' subcommand.
type cadenceCmd struct {
	date string
}

func (*cadenceCmd) Name() string     { return "cadence" }
func (*cadenceCmd) Synopsis() string { return "display each asset's payment frequency and next payment" }
func (*cadenceCmd) Usage() string {
	return `dvt cadence [-d <date>]

  Displays the inferred payment frequency of every asset, its last observed
  payment and the next expected one. Declared pay dates take precedence over
  inferred ones.
`
}

func (c *cadenceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divitrek.Today().String(), "As-of date for the inference (YYYY-MM-DD).")
}

func (c *cadenceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var cadences []divitrek.Cadence
	for symbol := range ledger.Symbols() {
		cadences = append(cadences, divitrek.NewCadence(ledger, symbol, on, schedule))
	}
	printMarkdown(renderer.CadenceMarkdown(on, cadences))

	return subcommands.ExitSuccess
}
