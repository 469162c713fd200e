package finledger

import (
	"testing"

	"finledger/date"
)

// two standard lots used across the matcher tests:
// L1: 10 shares for 100.00, L2: 10 shares for 130.00
func holdingWithTwoLots(t *testing.T) *SecurityHolding {
	t.Helper()
	h := newSecurityHolding("AAPL")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "AAPL", 10, 100)), nil)
	h.AddLot(newLotInfo(buyTx(2, "2025-01-15", "AAPL", 10, 130)), nil)
	return h
}

func TestAddLot_FIFO(t *testing.T) {
	h := holdingWithTwoLots(t)

	h.AddLot(newLotInfo(sellTx(3, "2025-02-01", "AAPL", 15, 400)), nil)

	if !h.Quantity.Equal(Q(5)) {
		t.Errorf("Quantity = %s, want 5", h.Quantity)
	}
	if len(h.Lots) != 1 {
		t.Fatalf("len(Lots) = %d, want 1 (L1 fully consumed)", len(h.Lots))
	}
	l2 := h.Lots[0]
	if l2.TxID != 2 {
		t.Errorf("surviving lot tx = %d, want 2", l2.TxID)
	}
	if !l2.Quantity.Equal(Q(5)) {
		t.Errorf("L2 quantity = %s, want 5", l2.Quantity)
	}
	if l2.CostBasis.Cmp(usd(65)) != 0 {
		t.Errorf("L2 cost basis = %s, want 65.00 (130 x 5/10)", l2.CostBasis)
	}
	if h.CostBasis.Cmp(usd(65)) != 0 {
		t.Errorf("holding cost basis = %s, want 65.00", h.CostBasis)
	}
	assertConserved(t, h)
}

func TestAddLot_SpecifiedLots(t *testing.T) {
	h := holdingWithTwoLots(t)

	// take 5 from L2 first, then all 10 of L1
	matches := []MatchInfo{
		{TxID: 3, LotTxID: 2, Quantity: Q(5)},
		{TxID: 3, LotTxID: 1, Quantity: Q(10)},
	}
	h.AddLot(newLotInfo(sellTx(3, "2025-02-01", "AAPL", 15, 400)), matches)

	if !h.Quantity.Equal(Q(5)) {
		t.Errorf("Quantity = %s, want 5", h.Quantity)
	}
	if len(h.Lots) != 1 {
		t.Fatalf("len(Lots) = %d, want 1 (L1 fully consumed)", len(h.Lots))
	}
	l2 := h.Lots[0]
	if l2.TxID != 2 || !l2.Quantity.Equal(Q(5)) {
		t.Errorf("surviving lot = tx %d qty %s, want tx 2 qty 5", l2.TxID, l2.Quantity)
	}
	if l2.CostBasis.Cmp(usd(65)) != 0 {
		t.Errorf("L2 cost basis = %s, want 65.00", l2.CostBasis)
	}
	assertConserved(t, h)
}

func TestAddLot_MatchExceedsLotIsClamped(t *testing.T) {
	h := holdingWithTwoLots(t)

	matches := []MatchInfo{{TxID: 3, LotTxID: 1, Quantity: Q(50)}}
	h.AddLot(newLotInfo(sellTx(3, "2025-02-01", "AAPL", 10, 300)), matches)

	// the match is clamped to L1's 10 shares, which also spends the sell
	if !h.Quantity.Equal(Q(10)) {
		t.Errorf("Quantity = %s, want 10", h.Quantity)
	}
	if len(h.Lots) != 1 || h.Lots[0].TxID != 2 {
		t.Fatalf("Lots = %d entries, want only L2", len(h.Lots))
	}
	assertConserved(t, h)
}

func TestAddLot_MissingMatchedLot(t *testing.T) {
	h := holdingWithTwoLots(t)

	// the named lot does not exist: the match is skipped, nothing offsets the
	// sell, and the residual becomes a lot of its own
	matches := []MatchInfo{{TxID: 3, LotTxID: 99, Quantity: Q(5)}}
	h.AddLot(newLotInfo(sellTx(3, "2025-02-01", "AAPL", 5, 150)), matches)

	if !h.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", h.Quantity)
	}
	if len(h.Lots) != 3 {
		t.Fatalf("len(Lots) = %d, want 3 (residual appended)", len(h.Lots))
	}
	residual := h.Lots[2]
	if !residual.Quantity.Equal(Q(-5)) {
		t.Errorf("residual quantity = %s, want -5", residual.Quantity)
	}
	assertConserved(t, h)
}

func TestAddLot_MatchesIgnoredOnAcquisition(t *testing.T) {
	h := holdingWithTwoLots(t)

	// matches on a buy are meaningless and ignored
	matches := []MatchInfo{{TxID: 3, LotTxID: 1, Quantity: Q(5)}}
	h.AddLot(newLotInfo(buyTx(3, "2025-02-01", "AAPL", 5, 80)), matches)

	if len(h.Lots) != 3 {
		t.Fatalf("len(Lots) = %d, want 3", len(h.Lots))
	}
	if !h.Lots[0].Quantity.Equal(Q(10)) || !h.Lots[1].Quantity.Equal(Q(10)) {
		t.Errorf("existing lots must be untouched")
	}
	assertConserved(t, h)
}

func TestAddLot_SellFromFlat(t *testing.T) {
	h := newSecurityHolding("AAPL")

	h.AddLot(newLotInfo(sellTx(1, "2025-02-01", "AAPL", 10, 300)), nil)

	// nothing to offset: the sell is kept as a (negative) lot
	if !h.Quantity.Equal(Q(-10)) {
		t.Errorf("Quantity = %s, want -10", h.Quantity)
	}
	if len(h.Lots) != 1 {
		t.Fatalf("len(Lots) = %d, want 1", len(h.Lots))
	}
	if h.CostBasis.Cmp(usd(-300)) != 0 {
		t.Errorf("cost basis = %s, want -300.00", h.CostBasis)
	}
	assertConserved(t, h)
}

func TestAddLot_OverDisposition(t *testing.T) {
	h := newSecurityHolding("AAPL")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "AAPL", 10, 100)), nil)

	// selling 15 out of 10: the open lot is consumed and the residual 5 stays
	// as a negative lot, signs preserved as-is
	h.AddLot(newLotInfo(sellTx(2, "2025-02-01", "AAPL", 15, 450)), nil)

	if !h.Quantity.Equal(Q(-5)) {
		t.Errorf("Quantity = %s, want -5", h.Quantity)
	}
	if len(h.Lots) != 1 {
		t.Fatalf("len(Lots) = %d, want 1", len(h.Lots))
	}
	if !h.Lots[0].Quantity.Equal(Q(-5)) {
		t.Errorf("residual quantity = %s, want -5", h.Lots[0].Quantity)
	}
	// the sell's own cost basis (-450) scaled to the unmatched 5/15
	if h.Lots[0].CostBasis.Cmp(usd(-150)) != 0 {
		t.Errorf("residual cost basis = %s, want -150.00", h.Lots[0].CostBasis)
	}
	assertConserved(t, h)
}

func TestAddLot_FeeOnlyLotSurvivesZeroMatch(t *testing.T) {
	h := newSecurityHolding("AAPL")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "AAPL", 20, 2003.45)), nil)
	h.AddLot(newLotInfo(buyTx(2, "2025-01-12", "AAPL", 0, 3)), nil)

	// a zero-quantity fee lot exists and carries its cost
	if len(h.Lots) != 2 {
		t.Fatalf("len(Lots) = %d, want 2", len(h.Lots))
	}
	fee := h.Lots[1]
	if !fee.Quantity.IsZero() || fee.CostBasis.Cmp(usd(3)) != 0 {
		t.Errorf("fee lot = qty %s cost %s, want qty 0 cost 3.00", fee.Quantity, fee.CostBasis)
	}

	// a zero-quantity match against it is a no-op, not a removal
	matches := []MatchInfo{
		{TxID: 3, LotTxID: 1, Quantity: Q(5)},
		{TxID: 3, LotTxID: 2, Quantity: Q(0)},
	}
	h.AddLot(newLotInfo(sellTx(3, "2025-02-01", "AAPL", 5, 600)), matches)

	if len(h.Lots) != 2 {
		t.Fatalf("after sell len(Lots) = %d, want 2 (fee lot survives)", len(h.Lots))
	}
	if h.lotByTxID(2) == nil {
		t.Errorf("fee lot pruned mid-pass")
	}
	assertConserved(t, h)
}

func TestAddLot_CostOnlyAdjustment(t *testing.T) {
	h := newSecurityHolding("AAPL")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "AAPL", 10, 100)), nil)

	fee := &Transaction{ID: 2, Date: date.MustParse("2025-01-20"), Action: MiscExp, Security: "AAPL", Amount: usd(-2.50)}
	h.AddLot(newLotInfo(fee), nil)

	if len(h.Lots) != 1 {
		t.Fatalf("len(Lots) = %d, want 1 (no lot for a cost adjustment)", len(h.Lots))
	}
	if h.CostBasis.Cmp(usd(102.50)) != 0 {
		t.Errorf("cost basis = %s, want 102.50", h.CostBasis)
	}
	if !h.Quantity.Equal(Q(10)) {
		t.Errorf("Quantity = %s, want 10", h.Quantity)
	}
}

func TestAdjustStockSplit(t *testing.T) {
	h := newSecurityHolding("ZZZ")
	lot := newLotInfo(buyTx(1, "2025-01-10", "ZZZ", 100, 1000))
	lot.Price = usd(20)
	h.AddLot(lot, nil)

	h.AdjustStockSplit(Q(2), Q(1))

	if !h.Quantity.Equal(Q(200)) {
		t.Errorf("Quantity = %s, want 200", h.Quantity)
	}
	if !lot.Quantity.Equal(Q(200)) {
		t.Errorf("lot quantity = %s, want 200", lot.Quantity)
	}
	if lot.CostBasis.Cmp(usd(1000)) != 0 {
		t.Errorf("lot cost basis = %s, want unchanged 1000.00", lot.CostBasis)
	}
	if lot.Price.Cmp(usd(10)) != 0 {
		t.Errorf("lot price = %s, want 10.00", lot.Price)
	}
	assertConserved(t, h)
}

func TestAdjustStockSplit_MultipleLotsSumExactly(t *testing.T) {
	h := newSecurityHolding("ZZZ")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "ZZZ", 3, 30)), nil)
	h.AddLot(newLotInfo(buyTx(2, "2025-01-11", "ZZZ", 7, 70)), nil)

	// 3-for-2: quantities scale per lot, the holding total is their sum
	h.AdjustStockSplit(Q(3), Q(2))

	if !h.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", h.Quantity)
	}
	assertConserved(t, h)
}

func TestUpdatePctRet_ZeroCostBasisIsUndefined(t *testing.T) {
	h := newSecurityHolding("AAPL")
	h.MarketValue = usd(500)
	h.PNL = usd(500)
	h.updatePctRet()
	if h.PctReturn != nil {
		t.Errorf("PctReturn = %v, want nil for a zero cost basis", *h.PctReturn)
	}

	h.CostBasis = usd(250)
	h.PNL = h.MarketValue.Sub(h.CostBasis)
	h.updatePctRet()
	if h.PctReturn == nil || !h.PctReturn.Equal(Percent(100)) {
		t.Errorf("PctReturn = %v, want 100.00%%", h.PctReturn)
	}
}

func TestUpdateMarketValue(t *testing.T) {
	h := newSecurityHolding("AAPL")
	h.AddLot(newLotInfo(buyTx(1, "2025-01-10", "AAPL", 10, 100)), nil)
	h.AddLot(newLotInfo(buyTx(2, "2025-01-15", "AAPL", 5, 60)), nil)

	h.updateMarketValue(usd(12.345))

	if h.MarketValue.Cmp(usd(185.18)) != 0 { // 12.345 x 15, rounded half up
		t.Errorf("MarketValue = %s, want 185.18", h.MarketValue)
	}
	if h.PNL.Cmp(usd(25.18)) != 0 {
		t.Errorf("PNL = %s, want 25.18", h.PNL)
	}
	if h.Lots[0].MarketValue.Cmp(usd(123.45)) != 0 {
		t.Errorf("lot market value = %s, want 123.45", h.Lots[0].MarketValue)
	}
}
