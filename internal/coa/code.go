package coa

import (
	"fmt"
	"strconv"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeEquity    AccountType = "equity"
	TypeRevenue   AccountType = "revenue"
	TypeCOGS      AccountType = "cogs"
	TypeExpense   AccountType = "expense"
)

// NormalBalance is the side that increases an account of a given type.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// Category is the reporting subdivision within an account type.
type Category string

const (
	CategoryCurrentAsset      Category = "CURRENT_ASSET"
	CategoryFixedAsset        Category = "FIXED_ASSET"
	CategoryCurrentLiability  Category = "CURRENT_LIABILITY"
	CategoryLongTermLiability Category = "LONG_TERM_LIABILITY"
	CategoryEquity            Category = "EQUITY"
	CategoryRevenue           Category = "REVENUE"
	CategoryCOGS              Category = "COGS"
	CategoryOperatingExpense  Category = "OPERATING_EXPENSE"
	CategoryOtherExpense      Category = "OTHER_EXPENSE"
)

// StatementType names the financial statement an account reports on.
type StatementType string

const (
	StatementBalanceSheet    StatementType = "balance-sheet"
	StatementIncomeStatement StatementType = "income-statement"
)

// Code is a 4-digit chart-of-accounts code. Classification is derived
// entirely from the numeric value, so two codes in the same range always
// agree on type, normal balance, category, and statement.
type Code string

// ParseCode validates a 4-digit account code string.
func ParseCode(s string) (Code, error) {
	if len(s) != 4 {
		return "", fmt.Errorf("%w: %q must be exactly 4 digits", ErrInvalidCode, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidCode, s)
		}
	}
	return Code(s), nil
}

func (c Code) String() string { return string(c) }

func (c Code) numeric() int {
	n, _ := strconv.Atoi(string(c))
	return n
}

// Type derives the account type from the code's numeric range.
func (c Code) Type() AccountType {
	switch n := c.numeric(); {
	case n < 2000:
		return TypeAsset
	case n < 3000:
		return TypeLiability
	case n < 4000:
		return TypeEquity
	case n < 5000:
		return TypeRevenue
	case n < 6000:
		return TypeCOGS
	default:
		return TypeExpense
	}
}

// NormalBalance derives the increasing side from the account type.
func (c Code) NormalBalance() NormalBalance {
	switch c.Type() {
	case TypeAsset, TypeCOGS, TypeExpense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// Category derives the reporting category from the code's numeric range.
func (c Code) Category() Category {
	switch n := c.numeric(); {
	case n < 1500:
		return CategoryCurrentAsset
	case n < 2000:
		return CategoryFixedAsset
	case n < 2500:
		return CategoryCurrentLiability
	case n < 3000:
		return CategoryLongTermLiability
	case n < 4000:
		return CategoryEquity
	case n < 5000:
		return CategoryRevenue
	case n < 6000:
		return CategoryCOGS
	case n < 9000:
		return CategoryOperatingExpense
	default:
		return CategoryOtherExpense
	}
}

// StatementType reports which financial statement the code belongs to.
func (c Code) StatementType() StatementType {
	switch c.Type() {
	case TypeAsset, TypeLiability, TypeEquity:
		return StatementBalanceSheet
	default:
		return StatementIncomeStatement
	}
}
