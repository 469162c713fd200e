package renderer

import (
	"fmt"
	"strings"

	"finledger"
	"finledger/date"
)

// HoldingMarkdown renders the holdings report: one row per security, the CASH
// row when present, and the TOTAL row in bold.
func HoldingMarkdown(holdings []*finledger.SecurityHolding, on date.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings on %s\n\n", on)
	fmt.Fprintln(&b, "| Security | Quantity | Cost Basis | Market Value | Gain / Loss | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	for _, h := range holdings {
		security, quantity := h.Security, h.Quantity.String()
		if h.Security == finledger.CashSecurity {
			quantity = ""
		}
		if h.Security == finledger.TotalSecurity {
			security, quantity = "**Total**", ""
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			security,
			quantity,
			h.CostBasis.String(),
			h.MarketValue.String(),
			h.PNL.SignedString(),
			pct(h.PctReturn),
		)
	}
	return b.String()
}

// LotsMarkdown renders the open lots of one holding, oldest first.
func LotsMarkdown(h *finledger.SecurityHolding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s Lots\n\n", h.Security)
	fmt.Fprintln(&b, "| Opened | Tx | Quantity | Cost Basis | Market Value | Gain / Loss | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	for _, l := range h.Lots {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
			l.Date,
			l.TxID,
			l.Quantity,
			l.CostBasis.String(),
			l.MarketValue.String(),
			l.PNL.SignedString(),
			pct(l.PctReturn),
		)
	}
	return b.String()
}

func pct(p *finledger.Percent) string {
	if p == nil {
		return "-"
	}
	return p.SignedString()
}
