// Package cmd implements the pfl command-line application.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"finledger"
	"github.com/google/subcommands"
)

// Register the subcommands. A main package calls Register() and then Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&updateCmd{}, "prices")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// The CLI is short lived, so global flags for the file locations are fine.

var journalFile = flag.String("journal", "journal.jsonl", "Path to the transactions journal (JSONL format)")
var pricesFile = flag.String("prices", "prices.jsonl", "Path to the prices file (JSONL format)")
var matchesFile = flag.String("matches", "matches.jsonl", "Path to the lot matches file (JSONL format)")

// DecodeJournalFile loads the journal; a missing file is an empty journal.
func DecodeJournalFile() ([]*finledger.Transaction, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, journal %q does not exist, starting empty", *journalFile)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finledger.DecodeJournal(f)
}

// DecodePricesFile loads the price table; a missing file is an empty table.
func DecodePricesFile() (*finledger.PriceTable, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, prices file %q does not exist, starting empty", *pricesFile)
		return finledger.NewPriceTable(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finledger.DecodePrices(f)
}

// DecodeMatchesFile loads the lot matches; a missing file means FIFO only.
func DecodeMatchesFile() (finledger.MatchSet, error) {
	f, err := os.Open(*matchesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return make(finledger.MatchSet), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finledger.DecodeMatches(f)
}

// AppendPrice appends one quotation to the prices file, creating it if needed.
func AppendPrice(security string, p finledger.Price) error {
	f, err := os.OpenFile(*pricesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return finledger.EncodePrice(f, security, p)
}
