package renderer

import (
	"fmt"

	"finledger"
)

// Transaction renders a one-line description of a transaction.
func Transaction(tx *finledger.Transaction) string {
	switch tx.Action {
	case finledger.Buy:
		return fmt.Sprintf("Bought %s of %s", tx.Quantity, tx.Security)
	case finledger.Sell:
		return fmt.Sprintf("Sold %s of %s", tx.Quantity.Abs(), tx.Security)
	case finledger.ShrsIn:
		return fmt.Sprintf("Received %s of %s", tx.Quantity, tx.Security)
	case finledger.ShrsOut:
		return fmt.Sprintf("Delivered %s of %s", tx.Quantity.Abs(), tx.Security)
	case finledger.ShtSell:
		return fmt.Sprintf("Sold short %s of %s", tx.Quantity.Abs(), tx.Security)
	case finledger.CvrShrt:
		return fmt.Sprintf("Covered %s of %s", tx.Quantity, tx.Security)
	case finledger.ReinvDiv:
		return fmt.Sprintf("Reinvested dividend in %s of %s", tx.Quantity, tx.Security)
	case finledger.StkSplit:
		return fmt.Sprintf("Split %s %s for %s", tx.Security, tx.Quantity, tx.OldQuantity)
	case finledger.RtrnCap:
		return fmt.Sprintf("Return of capital on %s", tx.Security)
	case finledger.MiscExp:
		return fmt.Sprintf("Expense on %s", tx.Security)
	case finledger.Dividend:
		return fmt.Sprintf("Dividend from %s", tx.Security)
	case finledger.Interest:
		return "Interest"
	case finledger.Deposit:
		return "Deposit"
	case finledger.Withdraw:
		return "Withdrawal"
	case finledger.Xfer:
		return "Transfer"
	default:
		return string(tx.Action)
	}
}
