package fiscal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/coa"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalance_DebitNormal(t *testing.T) {
	b := NewBalance("bal-1", "acct-1", Period{Year: 2025, Month: 1})
	require.NoError(t, b.SetOpeningBalance(dec("500.00"), coa.NormalDebit))
	require.NoError(t, b.UpdateFromTransactions(dec("300.00"), dec("100.00"), coa.NormalDebit))

	// closing = opening + debit - credit
	assert.True(t, b.Closing.Equal(dec("700.00")), "got %s", b.Closing)
}

func TestBalance_CreditNormal(t *testing.T) {
	b := NewBalance("bal-2", "acct-2", Period{Year: 2025, Month: 1})
	require.NoError(t, b.SetOpeningBalance(dec("1000.00"), coa.NormalCredit))
	require.NoError(t, b.UpdateFromTransactions(dec("250.00"), dec("400.00"), coa.NormalCredit))

	// closing = opening + credit - debit
	assert.True(t, b.Closing.Equal(dec("1150.00")), "got %s", b.Closing)
}

func TestBalance_Idempotent(t *testing.T) {
	b := NewBalance("bal-3", "acct-3", Period{Year: 2025, Month: 2})
	require.NoError(t, b.UpdateFromTransactions(dec("120.00"), dec("20.00"), coa.NormalDebit))
	first := b.Closing
	require.NoError(t, b.UpdateFromTransactions(dec("120.00"), dec("20.00"), coa.NormalDebit))
	assert.True(t, b.Closing.Equal(first))
}

func TestBalance_NegativeTotalsRejected(t *testing.T) {
	b := NewBalance("bal-4", "acct-4", Period{Year: 2025, Month: 2})
	err := b.UpdateFromTransactions(dec("-1.00"), dec("0"), coa.NormalDebit)
	assert.ErrorIs(t, err, ErrNegativeTotal)
}

func TestBalance_OpeningPropagation(t *testing.T) {
	jan := NewBalance("bal-5", "acct-5", Period{Year: 2025, Month: 1})
	require.NoError(t, jan.UpdateFromTransactions(dec("900.00"), dec("150.00"), coa.NormalDebit))

	feb := NewBalance("bal-6", "acct-5", Period{Year: 2025, Month: 2})
	require.NoError(t, feb.SetOpeningBalance(jan.Closing, coa.NormalDebit))
	assert.True(t, feb.Opening.Equal(dec("750.00")))
	assert.True(t, feb.Closing.Equal(dec("750.00")), "no activity yet")
}
