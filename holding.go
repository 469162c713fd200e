package finledger

import "log"

// Names of the synthetic rows appended after the real security holdings.
const (
	CashSecurity  = "CASH"
	TotalSecurity = "TOTAL"
)

// SecurityHolding aggregates the open lots of one security within a
// computation pass: the ordered lot list, the total quantity and cost basis,
// and the valuation results. Holdings are transient, rebuilt on every call.
type SecurityHolding struct {
	Security  string
	Lots      []*LotInfo // insertion (chronological) order
	Quantity  Quantity
	CostBasis Money

	MarketValue Money
	PNL         Money
	PctReturn   *Percent
}

func newSecurityHolding(security string) *SecurityHolding {
	return &SecurityHolding{Security: security}
}

// AddLot applies one transaction's lot to the holding. With an empty match
// list a disposition consumes open lots first-in-first-out; otherwise the
// explicit matches drive consumption. Inconsistent input is logged and
// absorbed, never rejected: the engine prefers a flagged-suspect snapshot
// over no snapshot at all.
func (h *SecurityHolding) AddLot(lot *LotInfo, matches []MatchInfo) {
	if lot.Action.AdjustsCost() {
		// cost-only adjustment, e.g. return of capital: no lot to track
		h.CostBasis = h.CostBasis.Add(lot.CostBasis)
		return
	}

	oldQty := h.Quantity
	h.Quantity = oldQty.Add(lot.Quantity)

	switch {
	case oldQty.IsZero() && lot.Action.IsClosing():
		// closing a position that isn't open: nothing to offset
		log.Printf("security %q: tx %d %s on a flat position, keeping it as a lot", h.Security, lot.TxID, lot.Action)
		h.appendLot(lot)
	case oldQty.Sign()*lot.Quantity.Sign() >= 0:
		// same economic direction (or a zero-quantity fee lot): a new lot
		if len(matches) > 0 {
			log.Printf("security %q: tx %d is not a disposition, ignoring %d lot matches", h.Security, lot.TxID, len(matches))
		}
		h.appendLot(lot)
	default:
		if len(matches) == 0 {
			h.reduceFIFO(lot)
		} else {
			h.reduceSpecified(lot, matches)
		}
		if !lot.Quantity.IsZero() {
			// disposed more than was offset: keep the residual, signs and all
			log.Printf("security %q: tx %d disposes %s beyond the matched quantity, keeping the residual as a lot", h.Security, lot.TxID, lot.Quantity)
			h.appendLot(lot)
		}
	}
}

func (h *SecurityHolding) appendLot(lot *LotInfo) {
	h.Lots = append(h.Lots, lot)
	h.CostBasis = h.CostBasis.Add(lot.CostBasis)
}

// reduceFIFO consumes open lots in list order until the disposition is fully
// absorbed or the lots run out. The surviving lots are collected into a fresh
// slice instead of being removed from the one being scanned.
func (h *SecurityHolding) reduceFIFO(disp *LotInfo) {
	kept := make([]*LotInfo, 0, len(h.Lots))
	for _, open := range h.Lots {
		if disp.Quantity.IsZero() {
			kept = append(kept, open)
			continue
		}
		if open.Quantity.Abs().GreaterThan(disp.Quantity.Abs()) {
			// the open lot survives, partially reduced; the disposition is spent
			oldCost := open.CostBasis
			open.scaleTo(open.Quantity.Add(disp.Quantity))
			h.CostBasis = h.CostBasis.Add(open.CostBasis.Sub(oldCost))
			disp.scaleTo(Q(0))
			kept = append(kept, open)
			continue
		}
		// the open lot is fully consumed; the disposition shrinks by its size
		disp.scaleTo(disp.Quantity.Add(open.Quantity))
		h.CostBasis = h.CostBasis.Sub(open.CostBasis)
	}
	h.Lots = kept
}

// reduceSpecified consumes the lots named by the match instructions, in
// order. Unknown lots are skipped, excessive match quantities clamped; a
// zero-quantity match leaves its lot untouched, so fee-only lots survive.
func (h *SecurityHolding) reduceSpecified(disp *LotInfo, matches []MatchInfo) {
	for _, m := range matches {
		open := h.lotByTxID(m.LotTxID)
		if open == nil {
			log.Printf("security %q: tx %d matches unknown lot tx %d, skipping", h.Security, disp.TxID, m.LotTxID)
			continue
		}
		take := m.Quantity.Abs()
		if take.GreaterThan(open.Quantity.Abs()) {
			log.Printf("security %q: tx %d match quantity %s exceeds lot tx %d (%s), clamping", h.Security, disp.TxID, take, m.LotTxID, open.Quantity)
			take = open.Quantity.Abs()
		}
		if take.IsZero() {
			continue
		}

		// move the lot toward zero by take, and the disposition symmetrically
		oldCost := open.CostBasis
		open.scaleTo(open.Quantity.Sub(towards(open.Quantity, take)))
		h.CostBasis = h.CostBasis.Add(open.CostBasis.Sub(oldCost))
		if open.Quantity.IsZero() {
			h.removeLot(open)
		}
		disp.scaleTo(disp.Quantity.Sub(towards(disp.Quantity, take)))
	}
}

// towards returns magnitude signed so that subtracting it moves q toward zero.
func towards(q, magnitude Quantity) Quantity {
	if q.IsNegative() {
		return magnitude.Neg()
	}
	return magnitude
}

func (h *SecurityHolding) lotByTxID(txID int64) *LotInfo {
	for _, l := range h.Lots {
		if l.TxID == txID {
			return l
		}
	}
	return nil
}

func (h *SecurityHolding) removeLot(target *LotInfo) {
	kept := h.Lots[:0]
	for _, l := range h.Lots {
		if l != target {
			kept = append(kept, l)
		}
	}
	h.Lots = kept
}

// AdjustStockSplit rescales every lot for a newQty-for-oldQty stock split.
// Quantities multiply by newQty/oldQty and per-share prices by the inverse,
// so each lot's market value is stable across the split. The holding quantity
// is recomputed as the sum of the adjusted lots rather than scaled directly,
// so rounding differences between lots cannot compound.
func (h *SecurityHolding) AdjustStockSplit(newQty, oldQty Quantity) {
	if newQty.IsZero() || oldQty.IsZero() {
		log.Printf("security %q: ignoring stock split %s for %s", h.Security, newQty, oldQty)
		return
	}
	total := Q(0)
	for _, l := range h.Lots {
		l.Quantity = l.Quantity.Mul(newQty).Div(oldQty)
		l.Price = l.Price.Mul(oldQty).Div(newQty)
		total = total.Add(l.Quantity)
	}
	h.Quantity = total
}

// updateMarketValue values the holding and each of its lots at the given
// per-share price.
func (h *SecurityHolding) updateMarketValue(price Money) {
	h.MarketValue = price.Mul(h.Quantity).Round2()
	h.PNL = h.MarketValue.Sub(h.CostBasis)
	for _, l := range h.Lots {
		l.updateMarketValue(price)
	}
}

func (h *SecurityHolding) updatePctRet() {
	h.PctReturn = pctReturn(h.PNL, h.CostBasis)
	for _, l := range h.Lots {
		l.updatePctRet()
	}
}
