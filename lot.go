package finledger

import "finledger/date"

// LotInfo describes a single acquisition of a security tracked with its own
// quantity and cost basis. During matching the same type carries a
// disposition in progress: its quantity and cost basis shrink toward zero as
// open lots absorb it.
type LotInfo struct {
	Security  string
	TxID      int64
	Date      date.Date // effective date of the originating transaction
	Action    TradeAction
	Quantity  Quantity // signed: positive long, negative disposition or short
	CostBasis Money    // total cost attributed to the lot, cents scale
	Price     Money    // per-share price at acquisition

	// Valuation results, filled by the valuation pass.
	MarketValue Money
	PNL         Money
	PctReturn   *Percent
}

// newLotInfo builds the lot a quantity-bearing transaction contributes to its
// security's holding.
func newLotInfo(tx *Transaction) *LotInfo {
	return &LotInfo{
		Security:  tx.Security,
		TxID:      tx.ID,
		Date:      tx.EffectiveDate(),
		Action:    tx.Action,
		Quantity:  tx.Quantity,
		CostBasis: tx.costBasis(),
		Price:     tx.Price,
	}
}

// scaleTo shrinks (or grows) the lot to newQty, rescaling the cost basis
// proportionally: cost × newQty / oldQty, rounded to cents. This is the only
// place the engine introduces rounding; it preserves the per-unit cost of
// whichever side keeps a nonzero quantity.
func (l *LotInfo) scaleTo(newQty Quantity) {
	if l.Quantity.IsZero() {
		// nothing to apportion from a zero-quantity lot
		l.Quantity = newQty
		return
	}
	l.CostBasis = l.CostBasis.Mul(newQty).Div(l.Quantity).Round2()
	l.Quantity = newQty
}

// updateMarketValue values the lot at the given per-share price.
func (l *LotInfo) updateMarketValue(price Money) {
	l.MarketValue = price.Mul(l.Quantity).Round2()
	l.PNL = l.MarketValue.Sub(l.CostBasis)
}

func (l *LotInfo) updatePctRet() {
	l.PctReturn = pctReturn(l.PNL, l.CostBasis)
}
