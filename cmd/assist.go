package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"finledger"
	"finledger/date"
	"finledger/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd answers a free-form question about the account with Gemini,
// grounded on the current holdings report.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your holdings" }
func (*assistCmd) Usage() string {
	return `pfl assist <question>

  Sends the question to Gemini together with the current holdings report.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "m", "gemini-2.5-flash", "Gemini model to use")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "expected a question")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

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

	today := date.Today()
	finledger.SortInvesting(txs)
	holdings := finledger.ComputeHoldings(txs, today, -1, matches.Lookup, prices.PriceOn)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf(`You are a personal finance assistant.
Here is the user's holdings report as of %s:

%s

Answer the user's question about this account, briefly and in markdown.

Question: %s`, today, renderer.HoldingMarkdown(holdings, today), question)

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating answer:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(result.Text())

	return subcommands.ExitSuccess
}
