package currency

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrSameCurrency    = errors.New("exchange rate requires two distinct currencies")
	ErrNonPositiveRate = errors.New("exchange rate must be positive")
	ErrRateMismatch    = errors.New("exchange rate does not cover this conversion")
)

// Code is an ISO 4217 currency code. Validity and minor-unit metadata come
// from the go-money currency table.
type Code string

// Validate checks the code against the ISO table.
func (c Code) Validate() error {
	if money.GetCurrency(string(c)) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, string(c))
	}
	return nil
}

func (c Code) String() string { return string(c) }

// Fraction returns the number of minor-unit digits (2 for USD, 0 for JPY).
func (c Code) Fraction() int {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return 2
	}
	return cur.Fraction
}

// Round rounds an amount to the currency's minor unit.
func (c Code) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(int32(c.Fraction()))
}
