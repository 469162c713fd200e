package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finledger"
	"finledger/date"
	"finledger/renderer"
	"github.com/google/subcommands"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the journal with running balances" }
func (*logCmd) Usage() string {
	return `pfl log

  Lists the journal in account order, with the running cash balance after
  each transaction.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeJournalFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	finledger.SortInvesting(txs)
	// the computation writes each transaction's running balance
	finledger.ComputeHoldings(txs, date.Today(), -1, nil, nil)

	printMarkdown(renderer.LogMarkdown(txs))
	return subcommands.ExitSuccess
}
