package coa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"1100", false},
		{"0000", false},
		{"9999", false},
		{"110", true},
		{"11000", true},
		{"11a0", true},
		{"", true},
		{"-100", true},
		{"+100", true},
		{" 100", true},
	}
	for _, tt := range tests {
		_, err := ParseCode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidCode, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
		}
	}
}

func TestCode_Classification(t *testing.T) {
	tests := []struct {
		code      string
		typ       AccountType
		normal    NormalBalance
		category  Category
		statement StatementType
	}{
		{"1100", TypeAsset, NormalDebit, CategoryCurrentAsset, StatementBalanceSheet},
		{"1500", TypeAsset, NormalDebit, CategoryFixedAsset, StatementBalanceSheet},
		{"2100", TypeLiability, NormalCredit, CategoryCurrentLiability, StatementBalanceSheet},
		{"2500", TypeLiability, NormalCredit, CategoryLongTermLiability, StatementBalanceSheet},
		{"3100", TypeEquity, NormalCredit, CategoryEquity, StatementBalanceSheet},
		{"4050", TypeRevenue, NormalCredit, CategoryRevenue, StatementIncomeStatement},
		{"5000", TypeCOGS, NormalDebit, CategoryCOGS, StatementIncomeStatement},
		{"6200", TypeExpense, NormalDebit, CategoryOperatingExpense, StatementIncomeStatement},
		{"9000", TypeExpense, NormalDebit, CategoryOtherExpense, StatementIncomeStatement},
		{"0100", TypeAsset, NormalDebit, CategoryCurrentAsset, StatementBalanceSheet},
	}
	for _, tt := range tests {
		c, err := ParseCode(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.typ, c.Type(), tt.code)
		assert.Equal(t, tt.normal, c.NormalBalance(), tt.code)
		assert.Equal(t, tt.category, c.Category(), tt.code)
		assert.Equal(t, tt.statement, c.StatementType(), tt.code)
	}
}
