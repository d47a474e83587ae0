// Package cmd implements the CLI application to track a dividend portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/divitrek/divitrek"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application. A main package registers
// them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&historyCmd{},
	&forecastCmd{},
	&cadenceCmd{},
	&txCmd{},
	&importCmd{},
	&fmtCmd{},
	&updateCmd{},
	&topicCmd{},
	&AssistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var pricesFile = flag.String("prices-file", "prices.jsonl", "Path to the price snapshot file (JSONL format)")
var scheduleFile = flag.String("schedule-file", "schedule.jsonl", "Path to the declared dividend schedule file (JSONL format)")
var currency = flag.String("currency", "USD", "Currency of the ledger amounts")

// DecodeLedger decodes the ledger from the app ledger file. A missing file is
// an empty ledger; rejected rows are reported on stderr and skipped.
func DecodeLedger() (*divitrek.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return divitrek.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, rejected, err := divitrek.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	for _, rowErr := range rejected {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", *ledgerFile, rowErr)
	}
	return ledger, nil
}

// DecodePrices decodes the price snapshot from the app prices file. A missing
// file is an empty snapshot: dependent fields degrade to "n/a".
func DecodePrices() (divitrek.Prices, error) {
	f, err := os.Open(*pricesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return divitrek.Prices{}, nil
		}
		return nil, fmt.Errorf("could not open prices file %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return divitrek.DecodePrices(f)
}

// DecodeSchedule decodes the declared dividend schedule from the app schedule
// file. A missing file is an empty schedule: everything falls back to
// inference.
func DecodeSchedule() (divitrek.Schedule, error) {
	f, err := os.Open(*scheduleFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return divitrek.Schedule{}, nil
		}
		return nil, fmt.Errorf("could not open schedule file %q: %w", *scheduleFile, err)
	}
	defer f.Close()
	return divitrek.DecodeSchedule(f)
}

// EncodeTransactions appends raw transactions to the app ledger file.
func EncodeTransactions(txs ...divitrek.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, tx := range txs {
		if err := divitrek.EncodeTransaction(f, tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d transactions to %s\n", len(txs), filename)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
