package finledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value (5.25 means 5.25%). Holdings and lots carry a
// *Percent so an undefined return (zero cost basis) stays absent instead of
// degenerating to zero.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders with an explicit sign; zero renders as "-".
func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", float64(p))
	if s == "+0.00%" {
		return "-"
	}
	return s
}

// Equal compares with a small tolerance, percents come from float rendering.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

var hundred = decimal.NewFromInt(100)

// pctReturn computes 100 × pnl / |cost|, rounded to two decimals, or nil when
// the cost basis is zero and the ratio is undefined.
func pctReturn(pnl, cost Money) *Percent {
	if cost.IsZero() {
		return nil
	}
	v := pnl.value.Div(cost.value.Abs()).Mul(hundred).Round(2)
	p := Percent(v.InexactFloat64())
	return &p
}
