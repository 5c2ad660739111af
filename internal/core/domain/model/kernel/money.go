package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object that represents a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to avoid floating point errors in
// price and total calculations. Amounts are rounded to two decimal places.
//
// The zero value of Money is valid and represents zero.
// Money is immutable: arithmetic methods return new values.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("25.00")
//	if err != nil {
//	    // handle error
//	}
//	subtotal := price.Mul(3) // 75.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a Money value from its decimal string
// representation, e.g. "1200.00". Returns an error if the string is not a
// valid decimal or the amount is negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a Money value of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by a non-negative integer factor,
// typically an item quantity.
func (m Money) Mul(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for equality.
// Trailing zeros are insignificant: 5 equals 5.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the fixed-point representation with two decimal places,
// e.g. "20.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
