// Package finledger implements the security-holdings engine of a personal
// finance ledger: given an account's ordered transaction history it computes
// the open positions per security, their tax lots and cost bases, market
// values and profit or loss.
//
// Dispositions (sells, share transfers out, short covers) consume open lots
// either first-in-first-out or following explicit lot-matching instructions.
// Stock splits rescale every open lot in place. The engine is deliberately
// tolerant of inconsistent histories: it logs a warning and keeps going, so a
// partially broken ledger still produces a usable snapshot.
package finledger
