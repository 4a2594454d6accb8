package currency

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Validate(t *testing.T) {
	assert.NoError(t, Code("USD").Validate())
	assert.NoError(t, Code("JPY").Validate())
	assert.ErrorIs(t, Code("XXY").Validate(), ErrUnknownCurrency)
	assert.ErrorIs(t, Code("").Validate(), ErrUnknownCurrency)
}

func TestCode_Round(t *testing.T) {
	assert.Equal(t, "10.57", Code("USD").Round(decimal.RequireFromString("10.567")).StringFixed(2))
	assert.Equal(t, "1057", Code("JPY").Round(decimal.RequireFromString("1056.7")).String())
}

func TestNewExchangeRate_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewExchangeRate("USD", "USD", decimal.NewFromInt(1), now)
	assert.ErrorIs(t, err, ErrSameCurrency)

	_, err = NewExchangeRate("USD", "EUR", decimal.Zero, now)
	assert.ErrorIs(t, err, ErrNonPositiveRate)

	_, err = NewExchangeRate("USD", "ZZZ", decimal.NewFromInt(1), now)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestExchangeRate_Convert(t *testing.T) {
	r, err := NewExchangeRate("USD", "EUR", decimal.RequireFromString("0.92"), time.Now())
	require.NoError(t, err)

	eur, err := r.Convert(decimal.RequireFromString("100.00"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "92.00", eur.StringFixed(2))

	usd, err := r.Convert(decimal.RequireFromString("92.00"), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "100.00", usd.StringFixed(2))

	_, err = r.Convert(decimal.NewFromInt(1), "GBP")
	assert.ErrorIs(t, err, ErrRateMismatch)
}

func TestExchangeRate_Inverse(t *testing.T) {
	r, err := NewExchangeRate("USD", "EUR", decimal.RequireFromString("0.80"), time.Now())
	require.NoError(t, err)

	inv := r.Inverse()
	assert.Equal(t, Code("EUR"), inv.From)
	assert.Equal(t, Code("USD"), inv.To)
	assert.Equal(t, "1.25", inv.Rate.StringFixed(2))
}
