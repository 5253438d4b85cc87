package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every amount is rounded to.
const moneyScale = 2

// MoneyPattern bounds textual amounts to what the numeric(10,2) columns hold. Exponent
// notation is not accepted.
const MoneyPattern = `^-?[0-9]{1,8}(\.[0-9]{1,8})?$`

var moneyFormat = regexp.MustCompile(MoneyPattern)

var (
	// ErrMoneyIsNotConstructed is returned for the zero value of Money, which stands
	// for "no amount" rather than for 0.00.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

	// ErrDivisionByZero is the cause attached to an ArithmeticError from Divide.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMoneyFormat is the cause attached when a textual amount does not match MoneyPattern.
	ErrMoneyFormat = errors.New("amount must be a plain decimal with at most 8 integer digits")
)

// ZeroMoney is the additive identity.
var ZeroMoney = NewMoney(decimal.Zero)

// Money is an immutable decimal amount. Every constructed amount and every result of
// arithmetic is rounded to two fractional digits with round-half-to-even, so equality
// checks between independently computed amounts are stable.
//
// Example:
//
//	price := kernel.MustParseMoney("7.50")
//	subTotal := price.MultiplyQuantity(3) // 22.50
//	total := kernel.ZeroMoney.Add(subTotal)
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rounds amount to two places (half-to-even) and wraps it.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount.RoundBank(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoneyFromCents builds an amount from an integer number of cents.
func NewMoneyFromCents(cents int64) Money {
	return NewMoney(decimal.New(cents, -moneyScale))
}

// ParseMoney parses a decimal string such as "17.50". Extra fractional digits are
// rounded away; more than 8 integer digits are rejected.
func ParseMoney(s string) (Money, error) {
	if !moneyFormat.MatchString(s) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", ErrMoneyFormat)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount), nil
}

// MustParseMoney is ParseMoney for literals known to be valid; it panics otherwise.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// IsSet reports whether m was constructed.
func (m Money) IsSet() bool {
	return m.guard.IsConstructed()
}

// Amount returns the rounded amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits. It is also the
// canonical key when Money has to be hashed.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// IsGreaterThanZero is false for the zero value.
func (m Money) IsGreaterThanZero() bool {
	return m.IsSet() && m.amount.IsPositive()
}

// IsGreaterThan is false when either operand is unset.
func (m Money) IsGreaterThan(other Money) bool {
	return m.IsSet() && other.IsSet() && m.amount.GreaterThan(other.amount)
}

// IsEqual compares rounded amounts by value: 10.0 and 10.00 are equal.
// Two unset values are equal, an unset and a set value are not.
func (m Money) IsEqual(other Money) bool {
	if m.IsSet() != other.IsSet() {
		return false
	}
	return m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

func (m Money) Subtract(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

func (m Money) Multiply(other Money) Money {
	return NewMoney(m.amount.Mul(other.amount))
}

// MultiplyQuantity multiplies by an item count.
func (m Money) MultiplyQuantity(quantity int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// Divide fails with an errs.ArithmeticError when divisor is zero.
func (m Money) Divide(divisor Money) (Money, error) {
	if divisor.amount.IsZero() {
		return Money{}, errs.NewArithmeticErrorWithCause(
			fmt.Sprintf("divide %s by %s", m, divisor), ErrDivisionByZero)
	}
	return NewMoney(m.amount.Div(divisor.amount)), nil
}
