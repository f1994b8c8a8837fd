package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or MoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromString constructors")

// Money represents a positive monetary amount in the store currency.
// It is an immutable value object backed by shopspring/decimal so that
// unit prices and order totals never accumulate float rounding errors.
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(500))
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulInt(3) // 1500
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be strictly positive.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string form, e.g.
// "499.99". This is the constructor used when decoding remote API payloads.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromFloat creates a Money value from a float amount. Remote product
// records carry prices as JSON numbers, which decode to float64.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Validate checks if the Money was properly constructed using a constructor.
// Returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MulInt multiplies the amount by an integer factor, yielding a new Money.
// Used to derive an order total from a unit price and quantity. The factor
// must be positive so the result stays a valid Money.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))))
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for JSON encoding. The returned
// value is approximate for amounts that do not fit a binary float exactly.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsEqual compares two Money values for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string form of the amount, e.g. "1500".
func (m Money) String() string {
	return m.amount.String()
}
