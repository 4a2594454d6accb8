package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth   = errors.New("month must be 1-12")
	ErrNotFound       = errors.New("budget not found")
	ErrNegativeAmount = errors.New("budget amount cannot be negative")
)

// Budget plans spending or revenue for one account across a fiscal year.
type Budget struct {
	ID         string
	AccountID  string
	FiscalYear int
	Monthly    [12]decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New creates an empty budget for an account and year.
func New(accountID string, fiscalYear int) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		FiscalYear: fiscalYear,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetMonth sets the planned amount for a month (1-12).
func (b *Budget) SetMonth(month int, amount decimal.Decimal) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	b.Monthly[month-1] = amount
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Month returns the planned amount for a month (1-12).
func (b *Budget) Month(month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return b.Monthly[month-1], nil
}

// Annual sums the monthly plan.
func (b *Budget) Annual() decimal.Decimal {
	total := decimal.Zero
	for _, m := range b.Monthly {
		total = total.Add(m)
	}
	return total
}

// Variance is actual minus planned for one month: positive means over
// budget for expense accounts, ahead of plan for revenue.
func (b *Budget) Variance(month int, actual decimal.Decimal) (decimal.Decimal, error) {
	planned, err := b.Month(month)
	if err != nil {
		return decimal.Zero, err
	}
	return actual.Sub(planned), nil
}

// Repository is the persistence port for budgets.
type Repository interface {
	Find(accountID string, fiscalYear int) (*Budget, error)
	FindByYear(fiscalYear int) ([]*Budget, error)
	Save(b *Budget) error
}
