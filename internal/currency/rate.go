package currency

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is the price of one unit of From expressed in To, effective
// from a given date. Rates are exact decimals.
type ExchangeRate struct {
	ID            string
	From          Code
	To            Code
	Rate          decimal.Decimal
	EffectiveDate time.Time
}

// NewExchangeRate validates and builds a rate.
func NewExchangeRate(from, to Code, rate decimal.Decimal, effective time.Time) (*ExchangeRate, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s", ErrSameCurrency, from)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveRate, rate)
	}
	return &ExchangeRate{
		ID:            uuid.NewString(),
		From:          from,
		To:            to,
		Rate:          rate,
		EffectiveDate: effective.UTC(),
	}, nil
}

// Convert translates an amount in From into To, rounded to To's minor unit.
func (r *ExchangeRate) Convert(amount decimal.Decimal, from Code) (decimal.Decimal, error) {
	switch from {
	case r.From:
		return r.To.Round(amount.Mul(r.Rate)), nil
	case r.To:
		return r.From.Round(amount.Div(r.Rate)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: rate is %s/%s, amount is %s", ErrRateMismatch, r.From, r.To, from)
	}
}

// Inverse returns the reciprocal rate.
func (r *ExchangeRate) Inverse() *ExchangeRate {
	return &ExchangeRate{
		ID:            uuid.NewString(),
		From:          r.To,
		To:            r.From,
		Rate:          decimal.NewFromInt(1).DivRound(r.Rate, 12),
		EffectiveDate: r.EffectiveDate,
	}
}

// Repository is the persistence port for exchange rates.
type Repository interface {
	FindRate(from, to Code, at time.Time) (*ExchangeRate, error)
	Save(r *ExchangeRate) error
}
