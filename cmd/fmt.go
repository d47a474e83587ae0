package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/divitrek/divitrek"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dvt fmt

  Reads all ledger rows, reports the ones that cannot be parsed, sorts the
  valid ones by date, and writes them back in a canonical JSONL format with a
  stable key order.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Write to a sibling temp file, then swap, so a failed write never
	// truncates the ledger.
	dir := filepath.Dir(*ledgerFile)
	tmp, err := os.CreateTemp(dir, filepath.Base(*ledgerFile)+".fmt-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating temp file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer os.Remove(tmp.Name())

	if err := divitrek.EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tmp.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing temp file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp.Name(), *ledgerFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing ledger file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %d transactions in %s\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
