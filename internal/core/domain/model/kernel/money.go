package kernel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount in the single currency the module bills in.
// Arithmetic is exact; rounding happens only where Round2 is called.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat converts a float literal such as 100.00 or 15.5.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromString parses a decimal string such as "75.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: amount}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m multiplied by a whole quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate returns m multiplied by a fractional rate such as a tax rate.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// Round2 rounds to two decimal places, half to even.
func (m Money) Round2() Money {
	return Money{amount: m.amount.RoundBank(2)}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal compares amounts numerically, so 17 equals 17.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Fixed2 renders the amount with exactly two decimals: "100.00".
func (m Money) Fixed2() string {
	return m.amount.StringFixedBank(2)
}

// Plain renders the shortest exact form keeping at least one fractional
// digit: 340 -> "340.0", 17.15 -> "17.15".
func (m Money) Plain() string {
	s := m.amount.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String implements fmt.Stringer using the two-decimal form.
func (m Money) String() string {
	return m.Fixed2()
}
