package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"finledger"
	"finledger/date"
	"github.com/google/subcommands"
)

// updateCmd fetches intraday quotes and appends them to the prices file.
type updateCmd struct {
	currency string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch intraday prices from Tradegate and record them"
}
func (*updateCmd) Usage() string {
	return `pfl update [-c <currency>] <security>=<isin> ...

  Fetches the latest traded price of each instrument by ISIN and appends a
  quotation dated today to the prices file.

Usage Examples:
$ pfl update AAPL=US0378331005 ZTS=US98978V1035
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "EUR", "Currency of the fetched quotations")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "expected at least one <security>=<isin> argument")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		security, isin, ok := strings.Cut(arg, "=")
		if !ok || security == "" || isin == "" {
			fmt.Fprintf(os.Stderr, "invalid argument %q, expected <security>=<isin>\n", arg)
			return subcommands.ExitUsageError
		}

		val, err := finledger.LatestQuote(isin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", security, err)
			status = subcommands.ExitFailure
			continue
		}

		p := finledger.Price{Value: finledger.M(val, c.currency), On: date.Today()}
		if err := AppendPrice(security, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording price for %s: %v\n", security, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s\n", security, p.Value)
	}
	return status
}
