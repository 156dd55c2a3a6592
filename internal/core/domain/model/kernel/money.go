package kernel

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code used when no currency is specified,
// for example for the total of an order without items.
const DefaultCurrency = "JPY"

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, NewMoneyFromString, or ZeroMoney")

// ErrCurrencyMismatch is the sentinel error for arithmetic between Money
// values of differing currencies. Use errors.Is against this sentinel;
// the concrete error is CurrencyMismatchError.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrDivisionByZero is returned by Money.Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// CurrencyMismatchError reports an attempted operation between two Money
// values whose currencies differ. It carries both currency codes for
// diagnostics and unwraps to ErrCurrencyMismatch.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError for the two
// conflicting currency codes.
func NewCurrencyMismatchError(left, right string) *CurrencyMismatchError {
	return &CurrencyMismatchError{Left: left, Right: right}
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot operate on %s and %s", ErrCurrencyMismatch, e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// Money is an immutable value object representing a monetary amount in a
// single currency. The amount is held as an exact decimal
// (github.com/shopspring/decimal), never a binary float, so monetary
// arithmetic does not accumulate rounding error.
//
// Every operation is pure: it returns a new Money and never mutates the
// receiver. Operations that combine two Money values require matching
// currencies and fail with CurrencyMismatchError otherwise.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("1000", "JPY")
//	tax, _ := kernel.NewMoneyFromString("100", "JPY")
//	total, _ := price.Add(tax)
//	fmt.Println(total) // "1100 JPY"
type Money struct {
	amount   decimal.Decimal
	currency string

	guard ConstructorGuard
}

// NewMoney creates a Money value with the given exact decimal amount and
// ISO 4217 currency code. The code must be exactly three uppercase letters.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString creates a Money value by parsing the amount from its
// decimal string representation. Intended for boundary code translating
// request payloads into domain values.
func NewMoneyFromString(amount string, currency string) (Money, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(parsed, currency)
}

// ZeroMoney returns a Money with a zero amount in the given currency.
// An empty currency selects DefaultCurrency. The caller is expected to pass
// a currency taken from an already-validated Money value.
func ZeroMoney(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}

	return Money{
		amount:   decimal.Zero,
		currency: currency,
		guard:    NewConstructorGuard(),
	}
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns a new Money holding the sum of both amounts.
// Fails with CurrencyMismatchError if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// Subtract returns a new Money holding the difference of both amounts.
// Fails with CurrencyMismatchError if the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   m.amount.Sub(other.amount),
		currency: m.currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// Multiply returns a new Money with the amount multiplied by a dimensionless
// factor. The currency is preserved; no currency check applies.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(factor),
		currency: m.currency,
		guard:    m.guard,
	}
}

// MultiplyInt is a convenience form of Multiply for integer factors such as
// item quantities.
func (m Money) MultiplyInt(factor int64) Money {
	return m.Multiply(decimal.NewFromInt(factor))
}

// Divide returns a new Money with the amount divided by a dimensionless
// divisor. Fails with ErrDivisionByZero when the divisor is zero.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}

	return Money{
		amount:   m.amount.Div(divisor),
		currency: m.currency,
		guard:    m.guard,
	}, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two Money values structurally: equal amounts and equal
// currencies. Amounts are compared numerically, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a developer-readable form such as "1000 JPY".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) checkCurrency(other Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}
	if m.currency != other.currency {
		return NewCurrencyMismatchError(m.currency, other.currency)
	}
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not an uppercase ISO 4217 code", currency))
		}
	}
	return nil
}
