package finledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in major units, with a weak currency code: the
// empty currency combines freely with any other, so purely computational
// values don't need to carry one.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from any supported numeric type and a currency code
// (ISO-4217, possibly empty).
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency resolves the full currency definition; calling the go-money
// constructor guarantees a non-nil currency even for unknown codes.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// Currency returns the currency code, possibly empty.
func (m Money) Currency() string { return m.cur }

// String formats the value with its currency symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	shifted := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Round2 rounds to cents, half away from zero. This is the engine's single
// rounding primitive.
func (m Money) Round2() Money { return Money{value: m.value.Round(2), cur: m.cur} }

// AsFloat returns an approximate float64 value, for rendering only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// withCurrency returns a copy carrying the given currency code.
func (m Money) withCurrency(currency string) Money {
	m.cur = currency
	return m
}

// cur merges the currencies of two operands; the empty currency is weak and
// yields to the other side. Mixing two distinct real currencies is a bug.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch: " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// MarshalJSON encodes the amount as a bare decimal number; the currency
// travels separately (per journal row).
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON decodes a decimal number, leaving the currency weak.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
