package finledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MatchInfo is one explicit lot-matching instruction: take Quantity shares of
// the disposing transaction from the lot opened by LotTxID. Quantity is a
// magnitude, never negative; the matcher derives direction from the lot.
type MatchInfo struct {
	TxID     int64    `json:"tx"`  // disposing transaction
	LotTxID  int64    `json:"lot"` // transaction that opened the matched lot
	Quantity Quantity `json:"quantity"`
}

// MatchSet indexes match instructions by disposing transaction id, in the
// order they were recorded.
type MatchSet map[int64][]MatchInfo

// Add appends a match instruction, preserving recording order per transaction.
func (s MatchSet) Add(m MatchInfo) {
	s[m.TxID] = append(s[m.TxID], m)
}

// Lookup returns the matches recorded for a disposing transaction; an empty
// result means FIFO. The method value is a valid MatchLookup.
func (s MatchSet) Lookup(txID int64) []MatchInfo {
	return s[txID]
}

// DecodeMatches reads lot-matching instructions from a JSONL stream, one
// MatchInfo object per line.
func DecodeMatches(r io.Reader) (MatchSet, error) {
	set := make(MatchSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var m MatchInfo
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("invalid match line %q: %w", string(line), err)
		}
		if m.Quantity.IsNegative() {
			return nil, fmt.Errorf("invalid match line %q: negative match quantity", string(line))
		}
		set.Add(m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
