package finledger

import (
	"cmp"
	"slices"

	"finledger/date"
)

// TradeAction identifies what a transaction does, using the QIF/OFX style
// action codes most personal finance tools exchange.
type TradeAction string

const (
	Buy      TradeAction = "BUY"
	Sell     TradeAction = "SELL"
	ShrsIn   TradeAction = "SHRSIN"   // shares transferred in
	ShrsOut  TradeAction = "SHRSOUT"  // shares transferred out
	ShtSell  TradeAction = "SHTSELL"  // short sale
	CvrShrt  TradeAction = "CVTSHRT"  // cover short
	ReinvDiv TradeAction = "REINVDIV" // dividend reinvested in shares
	StkSplit TradeAction = "STKSPLIT"
	RtrnCap  TradeAction = "RTRNCAP" // return of capital, adjusts cost basis only
	MiscExp  TradeAction = "MISCEXP" // security-linked expense, cost basis only
	Dividend TradeAction = "DIV"
	Interest TradeAction = "INTINC"
	Deposit  TradeAction = "DEPOSIT"
	Withdraw TradeAction = "WITHDRAW"
	Xfer     TradeAction = "XFER"
)

// CarriesShares reports whether the action moves a share quantity and thus
// feeds the lot matcher.
func (a TradeAction) CarriesShares() bool {
	switch a {
	case Buy, Sell, ShrsIn, ShrsOut, ShtSell, CvrShrt, ReinvDiv:
		return true
	}
	return false
}

// AdjustsCost reports whether the action changes a security's cost basis
// without moving any shares.
func (a TradeAction) AdjustsCost() bool {
	return a == RtrnCap || a == MiscExp
}

// IsClosing reports whether the action is a disposition type (sell, transfer
// out, short-sale or cover). Used to flag a closing action applied to a flat
// position as a data inconsistency.
func (a TradeAction) IsClosing() bool {
	switch a {
	case Sell, ShrsOut, ShtSell, CvrShrt:
		return true
	}
	return false
}

// Transaction is one row of an account's history. The engine reads every
// field except Balance, which it writes: the running cash total after this
// transaction, maintained for the full stream regardless of as-of filtering.
type Transaction struct {
	ID          int64       `json:"id"`
	Account     int64       `json:"account,omitempty"`
	Date        date.Date   `json:"date"`
	AsOf        date.Date   `json:"asof,omitzero"` // alternate economic date, optional
	Action      TradeAction `json:"action"`
	Security    string      `json:"security,omitempty"` // empty for pure cash rows
	Quantity    Quantity    `json:"quantity,omitzero"`
	OldQuantity Quantity    `json:"oldQuantity,omitzero"` // split denominator
	Price       Money       `json:"price,omitzero"`
	Commission  Money       `json:"commission,omitzero"`
	Amount      Money       `json:"amount,omitzero"` // signed cash flow
	Balance     Money       `json:"-"`
}

// EffectiveDate is the economic date of the transaction: the as-of date when
// present, the trade date otherwise.
func (t *Transaction) EffectiveDate() date.Date {
	if !t.AsOf.IsZero() {
		return t.AsOf
	}
	return t.Date
}

// costBasis derives the cost basis a lot built from this transaction starts
// with: the inverse of the cash flow when cash moved, else the traded value
// plus commission (e.g. shares transferred in without a cash leg).
func (t *Transaction) costBasis() Money {
	if !t.Amount.IsZero() {
		return t.Amount.Neg()
	}
	if t.Price.IsZero() {
		return t.Commission
	}
	return t.Price.Mul(t.Quantity).Round2().Add(t.Commission)
}

// SortInvesting sorts a transaction stream the way investing accounts are
// ordered: by date, then id. ComputeHoldings requires its input pre-sorted
// with one of these policies and never re-sorts.
func SortInvesting(txs []*Transaction) {
	slices.SortStableFunc(txs, func(a, b *Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// SortBanking sorts the way cash accounts are ordered: by date, then cash
// flow descending (deposits before withdrawals within a day), then id.
func SortBanking(txs []*Transaction) {
	slices.SortStableFunc(txs, func(a, b *Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
