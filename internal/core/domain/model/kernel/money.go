package kernel

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when no currency code is given.
const DefaultCurrency = "BRL"

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is a non-negative amount in an ISO-4217 currency.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates the amount and the currency code. An empty code means BRL.
func NewMoney(amount decimal.Decimal, currencyCode string) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := errors.Join(m.setAmount(amount), m.setCurrency(currencyCode)); err != nil {
		return Money{}, err
	}
	return m, nil
}

func NewMoneyFromFloat(amount float64, currencyCode string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currencyCode)
}

func NewMoneyFromString(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValidationErrorWithCause("amount is not a number", err)
	}
	return NewMoney(d, currencyCode)
}

// MustMoney is NewMoneyFromString that panics on error. Use it for literals.
func MustMoney(amount, currencyCode string) Money {
	m, err := NewMoneyFromString(amount, currencyCode)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney(currencyCode string) (Money, error) {
	return NewMoney(decimal.Zero, currencyCode)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValidationError(fmt.Sprintf("amount cannot be negative: %s", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(code string) error {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return errs.NewValidationErrorWithCause(fmt.Sprintf("currency %q is not an ISO-4217 code", code), err)
	}
	m.currency = unit.String()
	return nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.NewValidationError(
			fmt.Sprintf("cannot add money with different currencies: %s and %s", m.currency, other.currency))
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency, guard: m.guard}, nil
}

// MustAdd is Add that panics on a currency mismatch.
func (m Money) MustAdd(other Money) Money {
	sum, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// Multiply scales the amount by a quantity.
func (m Money) Multiply(factor uint) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))), currency: m.currency, guard: m.guard}
}

func (m Money) MultiplyDecimal(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, errs.NewValidationError(fmt.Sprintf("factor cannot be negative: %s", factor))
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency, guard: m.guard}, nil
}

// Format renders the amount with the pt-BR formatter, e.g. "R$ 1.234,50".
func (m Money) Format() string {
	return m.FormatWith(PtBRFormatter{})
}

func (m Money) FormatWith(f MoneyFormatter) string {
	return f.Format(m.amount, m.currency)
}

// Equals compares amount and currency. 10 and 10.00 are equal.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
