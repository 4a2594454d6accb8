package banking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTransaction() *Transaction {
	return NewTransaction("bank-1", "stmt-1",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		dec("-42.00"), "CHK-1042", "Office supplies")
}

func TestNewTransaction_Fingerprinted(t *testing.T) {
	tx := testTransaction()
	assert.Equal(t, Unmatched, tx.MatchStatus)
	assert.Equal(t, Fingerprint("bank-1", tx.Date, tx.Amount, "CHK-1042"), tx.Fingerprint)
}

func TestTransaction_MatchLifecycle(t *testing.T) {
	tx := testTransaction()

	require.NoError(t, tx.Match("line-1"))
	assert.Equal(t, Matched, tx.MatchStatus)
	assert.Equal(t, "line-1", tx.MatchedLineID)

	// One-to-one: a second match must fail.
	assert.ErrorIs(t, tx.Match("line-2"), ErrAlreadyMatched)

	// Matched transactions cannot be excluded.
	assert.ErrorIs(t, tx.Exclude(), ErrAlreadyMatched)

	require.NoError(t, tx.Unmatch())
	assert.Equal(t, Unmatched, tx.MatchStatus)
	assert.Empty(t, tx.MatchedLineID)
}

func TestTransaction_ExcludeInclude(t *testing.T) {
	tx := testTransaction()

	require.NoError(t, tx.Exclude())
	assert.ErrorIs(t, tx.Match("line-1"), ErrExcluded)
	require.NoError(t, tx.Include())
	require.NoError(t, tx.Match("line-1"))
	assert.ErrorIs(t, tx.Include(), ErrNotExcluded)
}

func TestTransaction_MatchRequiresLineID(t *testing.T) {
	tx := testTransaction()
	assert.ErrorIs(t, tx.Match(""), ErrEmptyLineID)
}

func TestStatement_Totals(t *testing.T) {
	s := NewStatement("bank-1", fiscal.Period{Year: 2025, Month: 3}, dec("1000.00"), dec("1158.00"), "user-1")
	s.AddTotals(dec("200.00"))
	s.AddTotals(dec("-42.00"))
	s.AddTotals(dec("100.00"))

	assert.Equal(t, 3, s.TransactionCount)
	assert.True(t, s.TotalDeposits.Equal(dec("300.00")))
	assert.True(t, s.TotalWithdrawals.Equal(dec("42.00")))
}
