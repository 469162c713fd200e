package finledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// journalRow wraps a Transaction with the row-level currency that applies to
// its money fields.
type journalRow struct {
	Transaction
	Currency string `json:"currency,omitempty"`
}

// DecodeJournal reads an account's transactions from a JSONL stream, one
// transaction object per line. The stream order is preserved; callers sort
// with SortInvesting or SortBanking before computing holdings.
func DecodeJournal(r io.Reader) ([]*Transaction, error) {
	var txs []*Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var row journalRow
		if err := json.Unmarshal(b, &row); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
		if row.Action == "" {
			return nil, fmt.Errorf("journal line %d: missing action", line)
		}
		if row.Date.IsZero() {
			return nil, fmt.Errorf("journal line %d: missing date", line)
		}
		tx := row.Transaction
		if row.Currency != "" {
			tx.Price = tx.Price.withCurrency(row.Currency)
			tx.Commission = tx.Commission.withCurrency(row.Currency)
			tx.Amount = tx.Amount.withCurrency(row.Currency)
		}
		txs = append(txs, &tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}

// EncodeTransaction appends one transaction in the JSONL wire form.
func EncodeTransaction(w io.Writer, tx *Transaction) error {
	row := journalRow{Transaction: *tx, Currency: tx.Amount.Currency()}
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// EncodeJournal writes a whole transaction stream in the JSONL wire form.
func EncodeJournal(w io.Writer, txs []*Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
