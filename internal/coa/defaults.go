package coa

import (
	"time"

	"github.com/google/uuid"
)

type seed struct {
	code     string
	name     string
	desc     string
	isDetail bool
	isSystem bool
}

// DefaultChart returns the seed chart of accounts for a new ledger.
// Codes follow the documented ranges, so classification falls out of the
// code alone.
func DefaultChart() []*Account {
	seeds := []seed{
		{"1000", "Cash", "Cash and cash equivalents", true, true},
		{"1100", "Accounts Receivable", "Amounts owed by customers", true, true},
		{"1200", "Inventory", "Goods held for sale", true, false},
		{"1300", "Prepaid Expenses", "Payments made in advance", true, false},
		{"1500", "Property, Plant & Equipment", "Long-term tangible assets", true, false},
		{"1600", "Accumulated Depreciation", "Contra asset for depreciation taken", true, true},
		{"2000", "Accounts Payable", "Amounts owed to vendors", true, true},
		{"2100", "Accrued Liabilities", "Expenses incurred but unpaid", true, false},
		{"2200", "Sales Tax Payable", "Tax collected on behalf of authorities", true, true},
		{"2500", "Long-Term Debt", "Loans due beyond one year", true, false},
		{"3000", "Owner's Equity", "Owner capital contributions", true, true},
		{"3100", "Retained Earnings", "Accumulated undistributed profits", true, true},
		{"4000", "Sales Revenue", "Income from sales", true, false},
		{"4050", "Service Revenue", "Income from services rendered", true, false},
		{"4100", "Interest Income", "Interest earned", true, false},
		{"5000", "Cost of Goods Sold", "Direct cost of goods sold", true, false},
		{"6000", "Salaries & Wages", "Employee compensation", true, false},
		{"6100", "Rent Expense", "Facility rent", true, false},
		{"6200", "Depreciation Expense", "Periodic depreciation charge", true, true},
		{"6300", "Bank Fees", "Bank service charges", true, false},
		{"9000", "Other Expense", "Non-operating expenses", true, false},
	}

	now := time.Now().UTC()
	chart := make([]*Account, 0, len(seeds))
	for _, s := range seeds {
		chart = append(chart, &Account{
			ID:          uuid.NewString(),
			Code:        Code(s.code),
			Name:        s.name,
			Description: s.desc,
			IsDetail:    s.isDetail,
			IsSystem:    s.isSystem,
			Status:      StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return chart
}
