package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummary_TaxableIncome(t *testing.T) {
	s := NewSummary(2025)
	require.NoError(t, s.Add(LineGrossReceipts, dec("100000")))
	require.NoError(t, s.Add(LineCOGS, dec("35000")))
	require.NoError(t, s.Add(LineOperating, dec("22000")))
	require.NoError(t, s.Add(LineDepreciation, dec("3000")))

	assert.Equal(t, "40000.00", s.TaxableIncome().StringFixed(2))
}

func TestSummary_Accumulates(t *testing.T) {
	s := NewSummary(2025)
	require.NoError(t, s.Add(LineGrossReceipts, dec("100")))
	require.NoError(t, s.Add(LineGrossReceipts, dec("250")))
	assert.Equal(t, "350.00", s.Amount(LineGrossReceipts).StringFixed(2))
}

func TestSummary_UnknownLine(t *testing.T) {
	s := NewSummary(2025)
	assert.ErrorIs(t, s.Add("schedule_q", dec("1")), ErrUnknownLine)
}

func TestSummary_LinesSorted(t *testing.T) {
	s := NewSummary(2025)
	require.NoError(t, s.Add(LineOperating, dec("1")))
	require.NoError(t, s.Add(LineCOGS, dec("1")))
	assert.Equal(t, []Line{LineCOGS, LineOperating}, s.Lines())
}
