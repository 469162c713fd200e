package finledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"finledger/date"
)

// PriceTable holds per-security price histories and answers "latest price not
// after this date" queries. It backs the PriceLookup the CLI hands to
// ComputeHoldings.
type PriceTable struct {
	prices map[string][]Price // sorted by date, ascending
}

// NewPriceTable returns an empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{prices: make(map[string][]Price)}
}

// Add records a price, keeping the security's history date-sorted. A second
// price on the same date replaces the first.
func (t *PriceTable) Add(security string, p Price) {
	history := t.prices[security]
	i, found := slices.BinarySearchFunc(history, p, func(a, b Price) int {
		return a.On.Compare(b.On)
	})
	if found {
		history[i] = p
	} else {
		history = slices.Insert(history, i, p)
	}
	t.prices[security] = history
}

// PriceOn returns the latest price for a security not after the given date.
// The method value is a valid PriceLookup.
func (t *PriceTable) PriceOn(security string, on date.Date) (Price, bool) {
	history := t.prices[security]
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].On.After(on) {
			return history[i], true
		}
	}
	return Price{}, false
}

// priceRow is the JSONL wire form of one quotation.
type priceRow struct {
	Security string    `json:"security"`
	Date     date.Date `json:"date"`
	Price    Money     `json:"price"`
	Currency string    `json:"currency,omitempty"`
}

// DecodePrices reads a price table from a JSONL stream, one quotation per line.
func DecodePrices(r io.Reader) (*PriceTable, error) {
	table := NewPriceTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var row priceRow
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("invalid price line %q: %w", string(line), err)
		}
		if row.Security == "" {
			return nil, fmt.Errorf("invalid price line %q: missing security", string(line))
		}
		table.Add(row.Security, Price{Value: row.Price.withCurrency(row.Currency), On: row.Date})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// EncodePrice appends one quotation in the JSONL wire form.
func EncodePrice(w io.Writer, security string, p Price) error {
	row := priceRow{Security: security, Date: p.On, Price: p.Value, Currency: p.Value.Currency()}
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
