package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divitrek/divitrek"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a broker activity CSV export into the ledger" }
func (*importCmd) Usage() string {
	return `dvt import -file <export.csv>

  Reads a broker activity CSV export and appends its rows to the ledger.
  Malformed rows are reported with their line number and skipped; they never
  abort the rest of the import.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Broker activity CSV export to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, rejected, err := divitrek.ImportTransactions(in, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	for _, rowErr := range rejected {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", c.file, rowErr)
	}
	if len(txs) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no transactions found in %q\n", c.file)
		return subcommands.ExitSuccess
	}

	return EncodeTransactions(txs...)
}
