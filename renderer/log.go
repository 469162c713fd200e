package renderer

import (
	"fmt"
	"strings"

	"finledger"
)

// LogMarkdown renders a transaction stream with its running cash balance. The
// Balance column is only meaningful after a holdings computation wrote it.
func LogMarkdown(txs []*finledger.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Id | Description | Amount | Balance |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|")

	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			tx.EffectiveDate(),
			tx.ID,
			Transaction(tx),
			tx.Amount.SignedString(),
			tx.Balance.String(),
		)
	}
	return b.String()
}
