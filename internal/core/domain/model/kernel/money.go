package kernel

import (
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable decimal amount. The zero value is a valid zero amount.
//
// Example:
//
//	price := kernel.MoneyFromFloat(49.99)
//	total := price.Multiply(2).Add(kernel.MoneyFromFloat(29.99))
//	fmt.Println(total) // 129.97
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps an existing decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat converts a float to Money using the shortest decimal
// representation of f, so 49.99 becomes exactly 49.99.
func MoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// MoneyFromString parses a decimal string such as "49.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Multiply returns m x quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal compares amounts numerically, so 10 and 10.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the nearest float64 value. Use it only at the wire boundary.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.String()
}
