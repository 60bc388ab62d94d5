package carteira

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a BRL monetary value for display and rounding.
// The engine computes in float64; Money is the edge where amounts get
// rounded to cents and formatted.
type Money struct {
	value decimal.Decimal
}

// BRL wraps an amount in BRL.
func BRL(value float64) Money {
	return Money{value: decimal.NewFromFloat(value)}
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }
func (m Money) IsZero() bool      { return m.value.Round(2).IsZero() }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }

// Div splits the amount by n, keeping full precision.
func (m Money) Div(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// AsFloat returns the amount rounded to cents as a float64.
func (m Money) AsFloat() float64 { return m.value.Round(2).InexactFloat64() }

// String formats the value with the BRL currency symbol and separators.
func (m Money) String() string {
	cur := money.GetCurrency(money.BRL)
	cents := m.value.Shift(int32(cur.Fraction))
	return money.New(cents.Round(0).IntPart(), money.BRL).Display()
}

// SignedString returns the string representation of the money value with a
// sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
