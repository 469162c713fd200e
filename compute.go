package finledger

import (
	"slices"
	"strings"

	"finledger/date"
)

// quantityScale is the display precision for share quantities; holdings whose
// final quantity rounds to zero at this scale are dropped from the report.
const quantityScale = 6

// Price is a quotation with the date it was last known good.
type Price struct {
	Value Money     `json:"price"`
	On    date.Date `json:"date"`
}

// PriceLookup returns the latest price for a security not after a date, or
// false when none is known.
type PriceLookup func(security string, on date.Date) (Price, bool)

// MatchLookup returns the explicit lot-matching instructions recorded for a
// disposing transaction; an empty result means FIFO.
type MatchLookup func(txID int64) []MatchInfo

// ComputeHoldings walks one account's transaction history and returns the
// open security holdings as of a date: securities in alphabetical order, then
// a CASH row (omitted when the as-of cash total is exactly zero), then a
// TOTAL row that is always present.
//
// The stream must already be sorted per the account's policy (SortInvesting
// or SortBanking); it is never re-sorted here. excludeTxID, when >= 0, drops
// transactions dated exactly asOf with an id at or above it — "as of this
// date, excluding the transaction currently being edited". Either lookup may
// be nil.
//
// Side effect: every transaction's Balance field is set to the running cash
// total, for the whole stream regardless of the as-of filtering.
func ComputeHoldings(txs []*Transaction, asOf date.Date, excludeTxID int64, matchFor MatchLookup, priceFor PriceLookup) []*SecurityHolding {
	holdings := make(map[string]*SecurityHolding)
	splits := make(map[string][]*Transaction)

	var cash, cashAsOf Money
	for _, tx := range txs {
		cash = cash.Add(tx.Amount)
		tx.Balance = cash

		if tx.Date.After(asOf) {
			continue
		}
		if excludeTxID >= 0 && tx.Date.Equal(asOf) && tx.ID >= excludeTxID {
			continue
		}
		cashAsOf = cash

		if tx.Security == "" {
			continue
		}
		switch {
		case tx.Action == StkSplit:
			h := holdingFor(holdings, tx.Security)
			h.AdjustStockSplit(tx.Quantity, tx.OldQuantity)
			// a split with a zero leg is ignored by the adjuster; keep it out
			// of the history too, the valuation pass divides by its quantity
			if !tx.Quantity.IsZero() && !tx.OldQuantity.IsZero() {
				splits[tx.Security] = append(splits[tx.Security], tx)
			}
		case tx.Action.CarriesShares() || tx.Action.AdjustsCost():
			var matches []MatchInfo
			if matchFor != nil {
				matches = matchFor(tx.ID)
			}
			holdingFor(holdings, tx.Security).AddLot(newLotInfo(tx), matches)
		}
	}

	list := make([]*SecurityHolding, 0, len(holdings)+2)
	for _, h := range holdings {
		if h.Quantity.Round(quantityScale).IsZero() {
			continue
		}
		list = append(list, h)
	}
	slices.SortFunc(list, func(a, b *SecurityHolding) int {
		return strings.Compare(a.Security, b.Security)
	})

	for _, h := range list {
		var price Money
		if priceFor != nil {
			if p, ok := priceFor(h.Security, asOf); ok {
				price = splitAdjusted(p, splits[h.Security])
			}
		}
		h.updateMarketValue(price)
		h.updatePctRet()
	}

	if !cashAsOf.IsZero() {
		ch := newSecurityHolding(CashSecurity)
		ch.CostBasis = cashAsOf
		ch.MarketValue = cashAsOf
		list = append(list, ch)
	}

	total := newSecurityHolding(TotalSecurity)
	for _, h := range list {
		total.MarketValue = total.MarketValue.Add(h.MarketValue)
		total.CostBasis = total.CostBasis.Add(h.CostBasis)
	}
	total.PNL = total.MarketValue.Sub(total.CostBasis)
	total.PctReturn = pctReturn(total.PNL, total.CostBasis)
	return append(list, total)
}

func holdingFor(holdings map[string]*SecurityHolding, security string) *SecurityHolding {
	h := holdings[security]
	if h == nil {
		h = newSecurityHolding(security)
		holdings[security] = h
	}
	return h
}

// splitAdjusted corrects a quotation for stock splits that happened after its
// effective date: walking the split history backward, each such split scales
// the price by oldQuantity/newQuantity. The history only ever contains splits
// up to the as-of date.
func splitAdjusted(p Price, history []*Transaction) Money {
	price := p.Value
	for i := len(history) - 1; i >= 0; i-- {
		sp := history[i]
		if sp.Date.Before(p.On) {
			continue
		}
		price = price.Mul(sp.OldQuantity).Div(sp.Quantity)
	}
	return price
}
