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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date    string
	exclude int64
	lots    bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the open holdings on a given date" }
func (*holdingCmd) Usage() string {
	return `pfl holding [-d <date>] [-x <tx-id>] [-lots]

  Displays the securities held on a given date with their cost basis, market
  value and return, plus the cash and total rows.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the holdings report (YYYY-MM-DD)")
	f.Int64Var(&c.exclude, "x", -1, "Exclude transactions on the report date with this id or higher")
	f.BoolVar(&c.lots, "lots", false, "Also show the open lots of each security")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := DecodeJournalFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePricesFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	matches, err := DecodeMatchesFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading matches: %v\n", err)
		return subcommands.ExitFailure
	}

	finledger.SortInvesting(txs)
	holdings := finledger.ComputeHoldings(txs, on, c.exclude, matches.Lookup, prices.PriceOn)

	md := renderer.HoldingMarkdown(holdings, on)
	if c.lots {
		for _, h := range holdings {
			if len(h.Lots) > 0 {
				md += "\n" + renderer.LotsMarkdown(h)
			}
		}
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}
