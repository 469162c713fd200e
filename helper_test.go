package finledger

import (
	"testing"

	"finledger/date"
)

// usd is a helper for tests to build dollar amounts from consts.
func usd(v float64) Money { return M(v, "USD") }

// Transaction constructors covering the shapes the tests need. Quantities are
// passed positive; the sell/out constructors store them negative, the way an
// investing journal records dispositions.

func depositTx(id int64, day string, amount float64) *Transaction {
	return &Transaction{ID: id, Date: date.MustParse(day), Action: Deposit, Amount: usd(amount)}
}

func buyTx(id int64, day, security string, qty, cost float64) *Transaction {
	return &Transaction{ID: id, Date: date.MustParse(day), Action: Buy, Security: security,
		Quantity: Q(qty), Amount: usd(-cost)}
}

func sellTx(id int64, day, security string, qty, proceeds float64) *Transaction {
	return &Transaction{ID: id, Date: date.MustParse(day), Action: Sell, Security: security,
		Quantity: Q(qty).Neg(), Amount: usd(proceeds)}
}

func splitTx(id int64, day, security string, newQty, oldQty float64) *Transaction {
	return &Transaction{ID: id, Date: date.MustParse(day), Action: StkSplit, Security: security,
		Quantity: Q(newQty), OldQuantity: Q(oldQty)}
}

// assertConserved checks the holding invariant: lot quantities sum exactly to
// the holding quantity, lot cost bases sum exactly to the holding cost basis.
func assertConserved(t *testing.T, h *SecurityHolding) {
	t.Helper()
	qty, cost := Q(0), Money{}
	for _, l := range h.Lots {
		qty = qty.Add(l.Quantity)
		cost = cost.Add(l.CostBasis)
	}
	if !qty.Equal(h.Quantity) {
		t.Errorf("security %q: lot quantities sum to %s, holding says %s", h.Security, qty, h.Quantity)
	}
	if cost.Cmp(h.CostBasis) != 0 {
		t.Errorf("security %q: lot cost bases sum to %s, holding says %s", h.Security, cost, h.CostBasis)
	}
}

// findHolding returns the holding for a security, or nil.
func findHolding(holdings []*SecurityHolding, security string) *SecurityHolding {
	for _, h := range holdings {
		if h.Security == security {
			return h
		}
	}
	return nil
}
